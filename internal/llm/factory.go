package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lotushuong244-bit/englishmaster/internal/store"
)

// ErrNotConfigured is returned by NewProviderFromEnv when no API key is found.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware: caller → retry → logging → vendor.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv resolves configuration from the environment. An explicit
// ENGLISHMASTER_LLM_PROVIDER wins; otherwise the vendors' standard API key
// variables are probed. It returns ErrNotConfigured when nothing is set.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, Config, error) {
	var cfg Config
	if os.Getenv("ENGLISHMASTER_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else if discovered, ok := DiscoverConfig(); ok {
		cfg = discovered
	} else {
		return nil, Config{}, ErrNotConfigured
	}

	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
