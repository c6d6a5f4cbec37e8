// Package copywriting holds the domain rules of product page copy generation:
// the shape of an inbound generation request, how the free-form features input
// is normalized into a FeatureList, and how the fixed prompt template is
// rendered from those validated inputs.
//
// Nothing in this package performs I/O or holds state between calls. A
// PromptBuilder is safe for concurrent use once constructed.
package copywriting
