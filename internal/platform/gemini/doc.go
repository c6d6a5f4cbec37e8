// Package gemini provides an implementation of the generation.Provider interface
// that uses Google's Gemini API for writing product page copy.
//
// This package is an infrastructure adapter: it connects the copy generation
// endpoint to Google's external Gemini service without exposing the details of
// that service to the rest of the application.
//
// Error handling follows the generation package taxonomy:
//   - genai.APIError values become *generation.APIError, keeping the HTTP
//     status code and the service's message
//   - any other client failure becomes a *generation.TransportError
//   - a response without candidate text becomes generation.ErrEmptyGeneration
//
// No retries are performed; each Generate call issues exactly one request.
package gemini
