package oracle

import "github.com/lotushuong244-bit/englishmaster/internal/llm"

// FeedbackSchema defines the JSON schema for speaking and pronunciation
// evaluation. Every field is required so OpenAI strict mode accepts it;
// the hint may be empty.
var FeedbackSchema = &llm.Schema{
	Name:        "pronunciation-feedback",
	Description: "Evaluation of a student's spoken attempt against a target sentence or word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "string",
				"enum":        []any{string(TierExcellent), string(TierGood), string(TierTryAgain)},
				"description": "Excellent for a near-exact match, Good for minor errors, Try Again otherwise",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short, encouraging feedback (max 20 words)",
			},
			"correctedPronunciation": map[string]any{
				"type":        "string",
				"description": "The pronunciation focus to correct, or empty if there was no mistake",
			},
		},
		"required":             []any{"score", "feedback", "correctedPronunciation"},
		"additionalProperties": false,
	},
}

// ExamplesSchema defines the JSON schema for extra example sentences.
var ExamplesSchema = &llm.Schema{
	Name:        "vocab-examples",
	Description: "Extra example sentences for a vocabulary word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"examples": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Two simple, fun example sentences using the word",
			},
		},
		"required":             []any{"examples"},
		"additionalProperties": false,
	},
}
