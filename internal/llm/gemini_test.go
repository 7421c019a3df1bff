package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(feedbackSchema().Definition)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["feedback"].Type != "STRING" {
		t.Fatalf("expected STRING for feedback, got %s", schema.Properties["feedback"].Type)
	}
	if len(schema.Properties["score"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["score"].Enum))
	}
	// Literal []string required lists must survive the conversion.
	if len(schema.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchema_DecodedArrays(t *testing.T) {
	schema := buildGeminiSchema(examplesSchema().Definition)

	if schema.Properties["examples"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for examples, got %s", schema.Properties["examples"].Type)
	}
	if schema.Properties["examples"].Items.Type != "STRING" {
		t.Fatalf("expected STRING items, got %s", schema.Properties["examples"].Items.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "examples" {
		t.Fatalf("expected required [examples], got %v", schema.Required)
	}
}

func TestGeminiProvider_Name(t *testing.T) {
	p := &GeminiProvider{model: "gemini-2.5-flash"}
	if p.Name() != "gemini" || p.ModelID() != "gemini-2.5-flash" {
		t.Fatalf("unexpected identity %q/%q", p.Name(), p.ModelID())
	}
}
