package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/copygen-api/internal/config"
	"github.com/phrazzld/copygen-api/internal/generation"
	"github.com/phrazzld/copygen-api/internal/metrics"
	"google.golang.org/genai"
)

const (
	// DefaultModel is used when no model name is configured.
	DefaultModel = "gemini-2.0-flash"

	providerName = "gemini"
)

// GeminiGenerator implements the generation.Provider interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string

	// maxTokens bounds the generated output
	maxTokens int32
}

var _ generation.Provider = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger:    logger,
		client:    client,
		model:     model,
		maxTokens: int32(cfg.MaxTokens),
	}, nil
}

// Name implements generation.Provider.
func (g *GeminiGenerator) Name() string {
	return providerName
}

// Generate implements generation.Provider with a single GenerateContent call.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{MaxOutputTokens: g.maxTokens})

	var text string
	if err != nil {
		err = mapError(err)
	} else {
		text = strings.TrimSpace(responseText(resp))
		if text == "" {
			err = generation.ErrEmptyGeneration
		}
	}

	metrics.ObserveUpstreamCall(providerName, resultLabel(err), time.Since(start))
	if err != nil {
		return "", err
	}
	return text, nil
}

// responseText returns the text parts of the first candidate, concatenated.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// mapError translates genai errors into the generation error taxonomy.
func mapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return generation.NewAPIError(apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return generation.NewAPIError(apiErrPtr.Code, apiErrPtr.Message)
	}
	return generation.NewTransportError(err)
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
