package generation

import "context"

// Provider generates copy for a prompt using an external LLM service.
type Provider interface {
	// Generate sends prompt to the service exactly once and returns the
	// generated text, trimmed of surrounding whitespace and never empty.
	// Errors follow the taxonomy in the package documentation.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider in logs and metrics.
	Name() string
}
