package config

// Supported LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// StaticDir is served at the root path when it exists.
	StaticDir string `mapstructure:"static_dir"`

	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"     validate:"required,min=1"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// LLMConfig contains all LLM integration related settings.
//
// API keys are deliberately optional here: a server without a key still
// starts, and every generation request answers with a configuration error.
type LLMConfig struct {
	Provider        string `mapstructure:"provider"          validate:"required,oneof=anthropic gemini"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`

	// Model and BaseURL fall back to the provider's defaults when empty.
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// MaxTokens must fit the int32 the Gemini API takes.
	MaxTokens      int `mapstructure:"max_tokens"      validate:"gt=0,lte=2147483647"`
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`

	PromptLocale       string `mapstructure:"prompt_locale"        validate:"required,oneof=en ko"`
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}

// APIKey returns the credential of the selected provider, if any.
func (c LLMConfig) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.AnthropicAPIKey
}

// APIKeyEnvVar names the environment variable an operator sets to supply
// the selected provider's credential.
func (c LLMConfig) APIKeyEnvVar() string {
	if c.Provider == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "ANTHROPIC_API_KEY"
}
