package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
// The names are unprefixed so an existing .env file keeps working.
var envBindings = map[string]string{
	"server.port":                     "PORT",
	"server.log_level":                "LOG_LEVEL",
	"server.static_dir":               "STATIC_DIR",
	"server.cors_allowed_origins":     "CORS_ALLOWED_ORIGINS",
	"server.shutdown_timeout_seconds": "SHUTDOWN_TIMEOUT_SECONDS",
	"llm.provider":                    "LLM_PROVIDER",
	"llm.anthropic_api_key":           "ANTHROPIC_API_KEY",
	"llm.gemini_api_key":              "GEMINI_API_KEY",
	"llm.model":                       "LLM_MODEL",
	"llm.base_url":                    "LLM_BASE_URL",
	"llm.max_tokens":                  "LLM_MAX_TOKENS",
	"llm.timeout_seconds":             "LLM_TIMEOUT_SECONDS",
	"llm.prompt_locale":               "PROMPT_LOCALE",
	"llm.prompt_template_path":        "PROMPT_TEMPLATE_PATH",
}

// Load configuration from environment variables and optionally a config file
// (config.yaml in the working directory). Environment variables take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.static_dir", "public")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("llm.provider", ProviderAnthropic)
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.timeout_seconds", 60)
	v.SetDefault("llm.prompt_locale", "en")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// A comma separated env value arrives as a single element.
	cfg.Server.CORSAllowedOrigins = splitList(cfg.Server.CORSAllowedOrigins)
	cfg.Server.LogLevel = strings.ToLower(strings.TrimSpace(cfg.Server.LogLevel))
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
