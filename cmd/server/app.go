package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/copygen-api/internal/api"
	"github.com/phrazzld/copygen-api/internal/config"
	"github.com/phrazzld/copygen-api/internal/copywriting"
	"github.com/phrazzld/copygen-api/internal/generation"
	"github.com/phrazzld/copygen-api/internal/platform/anthropic"
	"github.com/phrazzld/copygen-api/internal/platform/gemini"
)

// application holds the shared, read-only dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	// provider is nil when no credential is configured.
	provider        generation.Provider
	prompts         *copywriting.PromptBuilder
	generateHandler *api.GenerateHandler
}

// newApplication wires the application from configuration.
//
// A missing credential is not fatal: the server starts and every generation
// request answers with a configuration error until the key is supplied.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.prompts, err = copywriting.NewPromptBuilder(cfg.LLM.PromptLocale, cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	if cfg.LLM.APIKey() == "" {
		logger.Warn("generation credential is not configured; requests will fail until it is set",
			"provider", cfg.LLM.Provider,
			"env_var", cfg.LLM.APIKeyEnvVar())
	} else {
		app.provider, err = newProvider(ctx, logger.With("component", "llm_provider"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
		}
		logger.Info("LLM provider initialized", "provider", app.provider.Name())
	}

	app.generateHandler = api.NewGenerateHandler(app.provider, app.prompts, cfg.LLM)

	logger.Info("Application initialized successfully")
	return app, nil
}

// newProvider builds the provider selected by cfg.Provider.
func newProvider(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Provider, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return anthropic.NewClient(logger, cfg)
	case config.ProviderGemini:
		return gemini.NewGeminiGenerator(ctx, logger, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// Run serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
