package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/copygen-api/internal/api/shared"
	"github.com/phrazzld/copygen-api/internal/config"
	"github.com/phrazzld/copygen-api/internal/copywriting"
	"github.com/phrazzld/copygen-api/internal/generation"
	"github.com/phrazzld/copygen-api/internal/metrics"
	"github.com/phrazzld/copygen-api/internal/platform/logger"
)

// GenerateHandler serves POST /api/generate. It holds only read-only
// dependencies, so one instance serves concurrent requests.
type GenerateHandler struct {
	provider generation.Provider
	prompts  *copywriting.PromptBuilder
	llm      config.LLMConfig
}

// NewGenerateHandler creates a GenerateHandler. provider may be nil when no
// credential is configured; every request then fails with a configuration error.
func NewGenerateHandler(
	provider generation.Provider,
	prompts *copywriting.PromptBuilder,
	llm config.LLMConfig,
) *GenerateHandler {
	return &GenerateHandler{
		provider: provider,
		prompts:  prompts,
		llm:      llm,
	}
}

// Configured reports whether requests can reach a generation provider.
func (h *GenerateHandler) Configured() bool {
	return h.provider != nil && h.llm.APIKey() != ""
}

// Generate handles POST /api/generate requests.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !h.Configured() {
		h.fail(w, r, metrics.OutcomeMisconfigured,
			http.StatusInternalServerError, configurationMessage(h.llm.APIKeyEnvVar()), ErrNotConfigured)
		return
	}

	var req copywriting.GenerationRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.failWith(w, r, metrics.OutcomeInvalidRequest, fmt.Errorf("%w: %v", ErrInvalidRequestFormat, err))
		return
	}

	brief, err := copywriting.NewBrief(&req)
	if err != nil {
		h.failWith(w, r, metrics.OutcomeInvalidRequest, err)
		return
	}

	prompt, err := h.prompts.Build(brief)
	if err != nil {
		h.failWith(w, r, metrics.OutcomeMisconfigured, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), nil).DebugContext(r.Context(), "calling generation provider",
		"provider", h.provider.Name(),
		"feature_count", len(brief.Features),
		"prompt_length", len(prompt))

	// A client disconnect does not abort the outbound call.
	text, err := h.provider.Generate(context.WithoutCancel(r.Context()), prompt)
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = generation.ErrEmptyGeneration
		}
	}
	if err != nil {
		h.failWith(w, r, outcomeFor(err), err)
		return
	}

	metrics.IncGenerateRequest(metrics.OutcomeSuccess)
	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{Text: text})
}

func (h *GenerateHandler) failWith(w http.ResponseWriter, r *http.Request, outcome string, err error) {
	h.fail(w, r, outcome, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

func (h *GenerateHandler) fail(
	w http.ResponseWriter,
	r *http.Request,
	outcome string,
	status int,
	message string,
	err error,
) {
	metrics.IncGenerateRequest(outcome)
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

func outcomeFor(err error) string {
	var apiErr *generation.APIError
	switch {
	case errors.As(err, &apiErr):
		return metrics.OutcomeUpstreamError
	case errors.Is(err, generation.ErrEmptyGeneration):
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeTransportError
	}
}
