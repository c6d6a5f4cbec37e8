package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/copygen-api/internal/generation"
)

// MockProvider implements generation.Provider for testing
type MockProvider struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	// ProviderName is returned by Name; empty means "mock"
	ProviderName string

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string

		// Contexts contains all contexts passed to Generate calls
		Contexts []context.Context
	}
}

var _ generation.Provider = (*MockProvider)(nil)

// Generate implements the generation.Provider interface
func (m *MockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.Contexts = append(m.GenerateCalls.Contexts, ctx)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}

	return m.Text, m.Err
}

// Name implements the generation.Provider interface
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// CallCount returns how many times Generate was called
func (m *MockProvider) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the prompt of the most recent Generate call, or ""
func (m *MockProvider) LastPrompt() string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1]
}

// LastContext returns the context of the most recent Generate call, or nil
func (m *MockProvider) LastContext() context.Context {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Contexts) == 0 {
		return nil
	}
	return m.GenerateCalls.Contexts[len(m.GenerateCalls.Contexts)-1]
}

// NewMockProviderWithText creates a MockProvider that returns the given text
func NewMockProviderWithText(text string) *MockProvider {
	return &MockProvider{Text: text}
}

// NewMockProviderWithError creates a MockProvider that returns the given error
func NewMockProviderWithError(err error) *MockProvider {
	return &MockProvider{Err: err}
}

// MockProviderOverloaded simulates the service answering 529 overloaded
func MockProviderOverloaded() *MockProvider {
	return &MockProvider{Err: generation.NewAPIError(529, "overloaded")}
}

// MockProviderUnreachable simulates a network failure
func MockProviderUnreachable() *MockProvider {
	return &MockProvider{Err: generation.NewTransportError(nil)}
}

// MockProviderWithEmptyResult simulates a call that produced no text
func MockProviderWithEmptyResult() *MockProvider {
	return &MockProvider{Err: generation.ErrEmptyGeneration}
}

// Reset resets the call tracking state
func (m *MockProvider) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
	m.GenerateCalls.Contexts = nil
}
