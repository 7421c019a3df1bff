package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func feedbackSchema() *Schema {
	return &Schema{
		Name:        "test-feedback",
		Description: "Pronunciation feedback",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":                  map[string]any{"type": "string", "enum": []string{"Excellent", "Good", "Try Again"}},
				"feedback":               map[string]any{"type": "string"},
				"correctedPronunciation": map[string]any{"type": "string"},
			},
			"required":             []string{"score", "feedback", "correctedPronunciation"},
			"additionalProperties": false,
		},
	}
}

func examplesSchema() *Schema {
	return &Schema{
		Name: "test-examples",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"examples": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
			},
			"required": []any{"examples"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"score":"Good","feedback":"Clear, but slow down.","correctedPronunciation":""}`)
	if err := validateResponse(feedbackSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score":"Good"}`)
	err := validateResponse(feedbackSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_ExtraProperty(t *testing.T) {
	raw := json.RawMessage(`{"score":"Good","feedback":"ok","correctedPronunciation":"","points":10}`)
	if err := validateResponse(feedbackSchema(), raw); err == nil {
		t.Fatal("expected error for additional property")
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"score":"Perfect","feedback":"ok","correctedPronunciation":""}`)
	err := validateResponse(feedbackSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongItemType(t *testing.T) {
	valid := json.RawMessage(`{"examples":["The museum opens at nine."]}`)
	if err := validateResponse(examplesSchema(), valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"examples":[1,2]}`)
	if err := validateResponse(examplesSchema(), invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}

	empty := json.RawMessage(`{"examples":[]}`)
	if err := validateResponse(examplesSchema(), empty); err == nil {
		t.Fatal("expected error for empty examples")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(feedbackSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if string(invErr.Content) != `{not json}` {
		t.Fatalf("expected raw content on error, got %s", invErr.Content)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(feedbackSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text is fine`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
