package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all model provider configuration.
type Config struct {
	// Provider selects the vendor: "gemini", "anthropic", "openai",
	// "openrouter" or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single oracle call including retries. Default: 30s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional, for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// default vendor; the feedback prompts were tuned against it.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     4 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from ENGLISHMASTER_* variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&cfg.Provider, "ENGLISHMASTER_LLM_PROVIDER")

	setString(&cfg.Anthropic.APIKey, "ENGLISHMASTER_ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, "ENGLISHMASTER_ANTHROPIC_MODEL")

	setString(&cfg.OpenAI.APIKey, "ENGLISHMASTER_OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "ENGLISHMASTER_OPENAI_MODEL")
	setString(&cfg.OpenAI.BaseURL, "ENGLISHMASTER_OPENAI_BASE_URL")

	setString(&cfg.Gemini.APIKey, "ENGLISHMASTER_GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "ENGLISHMASTER_GEMINI_MODEL")

	setString(&cfg.OpenRouter.APIKey, "ENGLISHMASTER_OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, "ENGLISHMASTER_OPENROUTER_MODEL")

	if v := os.Getenv("ENGLISHMASTER_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables in
// priority order (Gemini, OpenAI, Anthropic, OpenRouter) and returns a
// Config for the first one found. Returns (Config{}, false) if none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key, envVar string
	switch c.Provider {
	case "anthropic":
		key, envVar = c.Anthropic.APIKey, "ENGLISHMASTER_ANTHROPIC_API_KEY"
	case "openai":
		key, envVar = c.OpenAI.APIKey, "ENGLISHMASTER_OPENAI_API_KEY"
	case "gemini":
		key, envVar = c.Gemini.APIKey, "ENGLISHMASTER_GEMINI_API_KEY"
	case "openrouter":
		key, envVar = c.OpenRouter.APIKey, "ENGLISHMASTER_OPENROUTER_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envVar, c.Provider)
	}
	return nil
}
