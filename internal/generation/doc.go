// Package generation defines the boundary between the copy generation endpoint
// and the external LLM services that write the copy. The Provider interface is
// implemented by the adapters under internal/platform (Anthropic Messages API,
// Gemini), and by fakes in tests.
//
// Provider failures are reported through a small set of error types so callers
// can branch exhaustively:
//
//   - *TransportError: the service could not be reached or answered with
//     something that could not be decoded. errors.Is(err, ErrTransport) holds.
//   - *APIError: the service answered with a non-success status. The status
//     and the service's own message are carried verbatim.
//   - ErrEmptyGeneration: the call succeeded but produced no usable text.
//
// Any other error is unexpected and should be treated like a transport failure.
package generation
