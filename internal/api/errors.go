package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/copygen-api/internal/copywriting"
	"github.com/phrazzld/copygen-api/internal/generation"
)

var (
	// ErrNotConfigured is returned when no credential is set for the
	// selected generation provider.
	ErrNotConfigured = errors.New("generation service credential is not configured")

	// ErrInvalidRequestFormat is returned when the body is not valid JSON.
	ErrInvalidRequestFormat = errors.New("invalid request format")
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Upstream API errors keep the upstream status.
func MapErrorToStatusCode(err error) int {
	var apiErr *generation.APIError

	switch {
	case errors.Is(err, ErrInvalidRequestFormat),
		errors.Is(err, copywriting.ErrValidation):
		return http.StatusBadRequest

	case errors.As(err, &apiErr):
		// WriteHeader panics outside this range
		if apiErr.StatusCode < 100 || apiErr.StatusCode > 999 {
			return http.StatusBadGateway
		}
		return apiErr.StatusCode

	// Configuration, transport, empty generation and anything unexpected
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the human-readable message sent to the client
// for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var apiErr *generation.APIError

	switch {
	case errors.Is(err, ErrInvalidRequestFormat):
		return "Invalid request format"

	case errors.Is(err, copywriting.ErrMissingProductName):
		return "Please provide a product name."

	case errors.Is(err, copywriting.ErrMissingTargetCustomer):
		return "Please provide a target customer."

	case errors.Is(err, copywriting.ErrNoFeatures):
		return "Please provide at least one feature."

	case errors.Is(err, copywriting.ErrValidation):
		return "Validation error"

	case errors.As(err, &apiErr):
		return apiErr.Message

	case errors.Is(err, generation.ErrEmptyGeneration):
		return "No copy was generated."

	case errors.Is(err, generation.ErrTransport):
		// The underlying transport message is surfaced as is.
		if msg := err.Error(); msg != "" {
			return msg
		}
		return "A server error occurred."

	default:
		return "A server error occurred."
	}
}

// configurationMessage tells the operator which variable to set.
func configurationMessage(envVar string) string {
	return "The API key is not configured. Add " + envVar + " to the environment or the .env file."
}
