package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lotushuong244-bit/englishmaster/internal/store"
)

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()

	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"score":"Excellent","feedback":"Great!","correctedPronunciation":""}`),
			Usage:   Usage{InputTokens: 120, OutputTokens: 30, TotalTokens: 150},
		},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("offline")}},
	)
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), PurposeFeedback)
	req := UserRequest("You are a friendly English teacher.", "Target: hello", feedbackSchema(), 300)
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, req); err == nil {
		t.Fatal("expected second call to fail")
	}

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	// Newest first.
	failed, ok := events[0], events[1]
	if failed.Success || !strings.Contains(failed.ErrorMessage, "offline") {
		t.Fatalf("expected failed event with error message, got %+v", failed)
	}
	if !ok.Success || ok.InputTokens != 120 || ok.Purpose != "pronunciation-feedback" || ok.Provider != "mock" {
		t.Fatalf("unexpected success event: %+v", ok)
	}
	if !strings.Contains(ok.RequestBody, "[schema: test-feedback]") {
		t.Fatalf("expected schema in request body, got %q", ok.RequestBody)
	}
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
