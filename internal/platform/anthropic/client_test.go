package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phrazzld/copygen-api/internal/config"
	"github.com/phrazzld/copygen-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient points a Client at an httptest server running handler and
// counts the calls it receives.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(testLogger(), config.LLMConfig{
		AnthropicAPIKey: "test-key",
		BaseURL:         server.URL,
		TimeoutSeconds:  5,
	})
	require.NoError(t, err)
	return client, &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()
		_, err := NewClient(testLogger(), config.LLMConfig{})
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()
		_, err := NewClient(nil, config.LLMConfig{AnthropicAPIKey: "k"})
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		c, err := NewClient(testLogger(), config.LLMConfig{AnthropicAPIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, c.baseURL)
		assert.Equal(t, DefaultModel, c.model)
		assert.Equal(t, int64(DefaultMaxTokens), c.maxTokens)
		assert.Equal(t, time.Duration(0), c.httpClient.Timeout)
		assert.Equal(t, "anthropic", c.Name())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()
		custom := &http.Client{}
		c, err := NewClient(testLogger(), config.LLMConfig{
			AnthropicAPIKey: "k",
			BaseURL:         "http://proxy.internal/",
			Model:           "claude-custom",
			MaxTokens:       64,
		}, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, "http://proxy.internal", c.baseURL)
		assert.Equal(t, "claude-custom", c.model)
		assert.Equal(t, int64(64), c.maxTokens)
		assert.Same(t, custom, c.httpClient)
	})
}

func TestGenerate_RequestShape(t *testing.T) {
	t.Parallel()

	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, APIVersion, r.Header.Get("anthropic-version"))
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		var body struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
			Messages  []struct {
				Role    string `json:"role"`
				Content []struct {
					Type string `json:"type"`
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, DefaultModel, body.Model)
		assert.Equal(t, DefaultMaxTokens, body.MaxTokens)
		if assert.Len(t, body.Messages, 1) && assert.Len(t, body.Messages[0].Content, 1) {
			assert.Equal(t, "user", body.Messages[0].Role)
			assert.Equal(t, "text", body.Messages[0].Content[0].Type)
			assert.Equal(t, "write copy", body.Messages[0].Content[0].Text)
		}

		writeJSON(w, http.StatusOK, `{"content":[{"type":"text","text":"ok"}]}`)
	})

	_, err := client.Generate(context.Background(), "write copy")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerate_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		status          int
		body            string
		expectedText    string
		expectedStatus  int
		expectedMessage string
		expectEmpty     bool
		expectTransport bool
	}{
		{
			name:         "success",
			status:       http.StatusOK,
			body:         `{"content":[{"type":"text","text":"Hello world"}]}`,
			expectedText: "Hello world",
		},
		{
			name:         "success text is trimmed",
			status:       http.StatusOK,
			body:         `{"content":[{"type":"text","text":"\n  Hello world \n"},{"type":"text","text":"ignored"}]}`,
			expectedText: "Hello world",
		},
		{
			name:            "upstream error message",
			status:          529,
			body:            `{"type":"error","error":{"type":"overloaded_error","message":"overloaded"}}`,
			expectedStatus:  529,
			expectedMessage: "overloaded",
		},
		{
			name:            "top level message",
			status:          http.StatusUnauthorized,
			body:            `{"message":"invalid x-api-key"}`,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid x-api-key",
		},
		{
			name:            "fallback message",
			status:          http.StatusBadGateway,
			body:            `<html>bad gateway</html>`,
			expectedStatus:  http.StatusBadGateway,
			expectedMessage: "upstream API error (502)",
		},
		{
			name:            "empty error body",
			status:          http.StatusServiceUnavailable,
			body:            ``,
			expectedStatus:  http.StatusServiceUnavailable,
			expectedMessage: "upstream API error (503)",
		},
		{
			name:            "rate limited is not retried",
			status:          http.StatusTooManyRequests,
			body:            `{"type":"error","error":{"type":"rate_limit_error","message":"rate limited"}}`,
			expectedStatus:  http.StatusTooManyRequests,
			expectedMessage: "rate limited",
		},
		{
			name:        "empty content",
			status:      http.StatusOK,
			body:        `{"content":[]}`,
			expectEmpty: true,
		},
		{
			name:        "whitespace only text",
			status:      http.StatusOK,
			body:        `{"content":[{"type":"text","text":"   "}]}`,
			expectEmpty: true,
		},
		{
			name:        "missing content",
			status:      http.StatusOK,
			body:        `{}`,
			expectEmpty: true,
		},
		{
			name:            "malformed success body",
			status:          http.StatusOK,
			body:            `{"content":`,
			expectTransport: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, tc.body)
			})

			text, err := client.Generate(context.Background(), "prompt")
			assert.Equal(t, int32(1), calls.Load(), "exactly one upstream call")

			switch {
			case tc.expectEmpty:
				assert.ErrorIs(t, err, generation.ErrEmptyGeneration)
				assert.Empty(t, text)
			case tc.expectTransport:
				assert.ErrorIs(t, err, generation.ErrTransport)
			case tc.expectedStatus != 0:
				var apiErr *generation.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tc.expectedStatus, apiErr.StatusCode)
				assert.Equal(t, tc.expectedMessage, apiErr.Message)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expectedText, text)
			}
		})
	}
}

func TestGenerate_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := NewClient(testLogger(), config.LLMConfig{
		AnthropicAPIKey: "test-key",
		BaseURL:         server.URL,
	})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt")

	var transportErr *generation.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, generation.ErrTransport)
	assert.NotEmpty(t, err.Error())
}

func TestGenerate_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	client, err := NewClient(testLogger(), config.LLMConfig{
		AnthropicAPIKey: "test-key",
		BaseURL:         server.URL,
	}, WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, generation.ErrTransport)
}

func TestResultLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", resultLabel(nil))
	assert.Equal(t, "api_error", resultLabel(generation.NewAPIError(500, "")))
	assert.Equal(t, "empty", resultLabel(generation.ErrEmptyGeneration))
	assert.Equal(t, "transport_error", resultLabel(generation.NewTransportError(nil)))
}

func TestMapError(t *testing.T) {
	t.Parallel()

	err := mapError(fmt.Errorf("post: %w", errors.New("connection reset by peer")))
	assert.ErrorIs(t, err, generation.ErrTransport)
	assert.Contains(t, err.Error(), "connection reset by peer")
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nested", errorMessage([]byte(`{"error":{"message":"nested"},"message":"top"}`)))
	assert.Equal(t, "top", errorMessage([]byte(`{"error":{"message":""},"message":"top"}`)))
	assert.Empty(t, errorMessage([]byte(`{}`)))
	assert.Empty(t, errorMessage([]byte(`not json`)))
}
