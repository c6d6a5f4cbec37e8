// Package api handles incoming HTTP requests for copy generation.
//
// It decodes and validates the product brief, renders the prompt, calls the
// configured generation provider and translates every failure into a
// {"error": "..."} response with a status matching the failure kind.
package api
