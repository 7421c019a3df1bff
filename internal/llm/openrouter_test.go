package llm

import (
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "google/gemini-2.5-flash",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.5-flash" {
			t.Errorf("model = %q, want %q", p.ModelID(), "google/gemini-2.5-flash")
		}
		if p.Name() != "openrouter" {
			t.Errorf("name = %q, want %q", p.Name(), "openrouter")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.5-flash"})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "anthropic/claude-haiku-4-5",
			BaseURL: "https://custom.openrouter.example/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "anthropic/claude-haiku-4-5" {
			t.Errorf("model = %q, want pass-through", p.ModelID())
		}
	})
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gemini-2.5-flash"); c == nil || c.InputPerMTok != 0.3 {
		t.Fatalf("unexpected cost for gemini-2.5-flash: %+v", c)
	}
	if c := LookupCost("google/gemini-2.5-flash"); c == nil {
		t.Fatal("expected vendor-prefixed ID to resolve")
	}
	if c := LookupCost("made-up-model"); c != nil {
		t.Fatalf("expected nil for unknown model, got %+v", c)
	}

	cost := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}.Cost(1_000_000, 200_000)
	if cost != 2 {
		t.Fatalf("expected cost 2, got %v", cost)
	}
}
