// Package anthropic provides an implementation of the generation.Provider
// interface backed by Anthropic's Messages API through the official Go SDK.
package anthropic

// errorResponse covers both {"error":{"message":...}} and {"message":...}.
type errorResponse struct {
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}
