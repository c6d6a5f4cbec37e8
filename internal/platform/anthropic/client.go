package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/phrazzld/copygen-api/internal/config"
	"github.com/phrazzld/copygen-api/internal/generation"
	"github.com/phrazzld/copygen-api/internal/metrics"
)

const (
	DefaultBaseURL   = "https://api.anthropic.com"
	DefaultModel     = "claude-sonnet-4-5"
	DefaultMaxTokens = 1024

	// APIVersion is the anthropic-version header the SDK sends.
	APIVersion = "2023-06-01"

	providerName = "anthropic"

	// maxErrorBodyBytes bounds how much of an error body is inspected.
	maxErrorBodyBytes = 1 << 20
)

// Client implements generation.Provider on top of the Anthropic Messages API.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	logger     *slog.Logger
	api        sdk.Client
	httpClient *http.Client
	baseURL    string
	model      string
	maxTokens  int64
}

var _ generation.Provider = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client, e.g. to inject a test transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client from the LLM configuration.
//
// Model, base URL and max tokens fall back to the package defaults. A zero
// TimeoutSeconds leaves the outbound call without a deadline. The SDK's
// automatic retries are disabled.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key cannot be empty", generation.ErrInvalidConfig)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	c := &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL:    baseURL,
		model:      model,
		maxTokens:  int64(maxTokens),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.api = sdk.NewClient(
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithBaseURL(c.baseURL),
		option.WithHTTPClient(c.httpClient),
		option.WithMaxRetries(0),
		option.WithMiddleware(normalizeErrorBody),
	)
	return c, nil
}

// Name implements generation.Provider.
func (c *Client) Name() string {
	return providerName
}

// Generate implements generation.Provider. It performs exactly one call to
// the Messages API and never retries.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := c.generate(ctx, prompt)
	metrics.ObserveUpstreamCall(providerName, resultLabel(err), time.Since(start))
	return text, err
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	c.logger.DebugContext(ctx, "Making Anthropic API call",
		"model", c.model,
		"prompt_length", len(prompt))

	msg, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		err = mapError(err)
		var apiErr *generation.APIError
		if errors.As(err, &apiErr) {
			c.logger.WarnContext(ctx, "Anthropic API returned an error status",
				"status_code", apiErr.StatusCode)
		}
		return "", err
	}

	text := ""
	if len(msg.Content) > 0 {
		text = strings.TrimSpace(msg.Content[0].Text)
	}
	if text == "" {
		return "", generation.ErrEmptyGeneration
	}

	c.logger.DebugContext(ctx, "Anthropic API call successful",
		"stop_reason", msg.StopReason,
		"output_tokens", msg.Usage.OutputTokens)
	return text, nil
}

// mapError translates SDK errors into the generation error taxonomy.
func mapError(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return generation.NewAPIError(apiErr.StatusCode, errorMessage([]byte(apiErr.RawJSON())))
	}
	return generation.NewTransportError(err)
}

// errorMessage extracts error.message, then message, from an error body.
// Anything unparseable yields "" so the caller falls back to a generic text.
func errorMessage(body []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return parsed.Message
}

// normalizeErrorBody replaces a non-JSON error body with {} so the SDK still
// reports the status as an API error instead of a decoding failure.
func normalizeErrorBody(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	resp, err := next(req)
	if err != nil || resp == nil || resp.StatusCode < http.StatusBadRequest {
		return resp, err
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	_ = resp.Body.Close()
	if readErr != nil || !json.Valid(body) {
		body = []byte("{}")
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

func resultLabel(err error) string {
	var apiErr *generation.APIError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &apiErr):
		return "api_error"
	case errors.Is(err, generation.ErrEmptyGeneration):
		return "empty"
	default:
		return "transport_error"
	}
}
