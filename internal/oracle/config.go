package oracle

import "time"

// Config holds oracle call settings.
type Config struct {
	EvaluateMaxTokens int
	ExamplesMaxTokens int
	Temperature       float64

	// Per-call deadlines. Expiry counts as an oracle failure.
	EvaluateTimeout time.Duration
	ExamplesTimeout time.Duration

	// ExampleCacheSize bounds the number of cached (word, topic) results.
	ExampleCacheSize int64
}

// DefaultConfig returns sensible defaults for oracle calls.
func DefaultConfig() Config {
	return Config{
		EvaluateMaxTokens: 300,
		ExamplesMaxTokens: 300,
		Temperature:       0.4,
		EvaluateTimeout:   20 * time.Second,
		ExamplesTimeout:   15 * time.Second,
		ExampleCacheSize:  512,
	}
}
