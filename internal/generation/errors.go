package generation

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is matched by every *TransportError.
	ErrTransport = errors.New("generation service unreachable")

	// ErrEmptyGeneration is returned when the service produced no text.
	ErrEmptyGeneration = errors.New("no copy was generated")

	// ErrInvalidConfig is returned when a provider cannot be constructed.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// TransportError wraps a network failure or an undecodable response.
type TransportError struct {
	Err error
}

// NewTransportError wraps err. A nil err yields a generic transport error.
func NewTransportError(err error) *TransportError {
	if err == nil {
		err = ErrTransport
	}
	return &TransportError{Err: err}
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrTransport as a match so callers need not use errors.As.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// APIError is a non-success answer from the generation service.
type APIError struct {
	StatusCode int
	Message    string
}

// NewAPIError builds an APIError, falling back to a generic message that
// embeds the status when the service did not provide one.
func NewAPIError(statusCode int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("upstream API error (%d)", statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}
