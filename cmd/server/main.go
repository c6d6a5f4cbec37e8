// Package main implements the entry point for the copygen API server,
// which turns a product brief into product-detail-page copy through an LLM.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/copygen-api/internal/config"
	"github.com/phrazzld/copygen-api/internal/platform/logger"
)

func main() {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("copygen-api: %v", err)
	}
}

// run loads configuration, wires the application and serves until ctx is done.
func run(ctx context.Context) error {
	cfg, l, err := initializeApp()
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"provider", cfg.LLM.Provider,
		"prompt_locale", cfg.LLM.PromptLocale)
	l.Debug("LLM configuration",
		"api_key_present", cfg.LLM.APIKey() != "",
		"model", cfg.LLM.Model,
		"base_url_override", cfg.LLM.BaseURL != "")

	return cfg, l, nil
}
