package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/llm"
)

// ErrNoProvider is returned when the oracle has no model to ask.
var ErrNoProvider = errors.New("oracle: no LLM provider configured")

// Service evaluates spoken attempts and generates extra vocabulary
// examples using an llm.Provider. It is safe for concurrent use.
type Service struct {
	provider llm.Provider
	cfg      Config
	examples *ristretto.Cache[string, []string]
	logger   *slog.Logger
}

// NewService creates an oracle. A nil provider is allowed: every call then
// fails over to its offline result.
func NewService(provider llm.Provider, cfg Config) (*Service, error) {
	size := cfg.ExampleCacheSize
	if size <= 0 {
		size = DefaultConfig().ExampleCacheSize
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, []string]{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create example cache: %w", err)
	}

	return &Service{
		provider: provider,
		cfg:      cfg,
		examples: cache,
		logger:   slog.Default().With("component", "oracle"),
	}, nil
}

// Available reports whether a model provider is configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Close releases the example cache.
func (s *Service) Close() {
	s.examples.Close()
}

type feedbackOutput struct {
	Score                  string `json:"score"`
	Feedback               string `json:"feedback"`
	CorrectedPronunciation string `json:"correctedPronunciation"`
}

// Evaluate compares a transcript with the target utterance. On any failure
// it returns FallbackFeedback together with the cause, so callers always
// have something to show.
func (s *Service) Evaluate(ctx context.Context, target, transcript string) (Feedback, error) {
	if strings.TrimSpace(transcript) == "" {
		return silentFeedback(), nil
	}

	fb, err := s.evaluate(ctx, target, transcript)
	if err != nil {
		s.logger.Warn("evaluation failed, using fallback", "target", target, "err", err)
		return FallbackFeedback(), err
	}
	return fb, nil
}

func (s *Service) evaluate(ctx context.Context, target, transcript string) (Feedback, error) {
	if s.provider == nil {
		return Feedback{}, ErrNoProvider
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeFeedback)
	ctx, cancel := withTimeout(ctx, s.cfg.EvaluateTimeout)
	defer cancel()

	req := llm.UserRequest(evaluateSystemPrompt, buildEvaluateUserMessage(target, transcript), FeedbackSchema, s.cfg.EvaluateMaxTokens)
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Feedback{}, fmt.Errorf("evaluate attempt: %w", err)
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Feedback{}, fmt.Errorf("parse feedback response: %w", err)
	}
	tier, err := ParseTier(out.Score)
	if err != nil {
		return Feedback{}, fmt.Errorf("parse feedback response: %w", err)
	}

	return Feedback{
		Tier: tier,
		Text: strings.TrimSpace(out.Feedback),
		Hint: strings.TrimSpace(out.CorrectedPronunciation),
	}, nil
}

type examplesOutput struct {
	Examples []string `json:"examples"`
}

// Examples returns extra example sentences for a word in a topic. Results
// are cached per (word, topic). An error means no examples; it is never
// worth showing to the learner.
func (s *Service) Examples(ctx context.Context, word, topic string) ([]string, error) {
	key := exampleKey(word, topic)
	if cached, ok := s.examples.Get(key); ok {
		return cached, nil
	}

	if s.provider == nil {
		return nil, ErrNoProvider
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeExamples)
	ctx, cancel := withTimeout(ctx, s.cfg.ExamplesTimeout)
	defer cancel()

	req := llm.UserRequest(examplesSystemPrompt, buildExamplesUserMessage(word, topic), ExamplesSchema, s.cfg.ExamplesMaxTokens)
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate examples for %q: %w", word, err)
	}

	var out examplesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse examples response: %w", err)
	}

	var examples []string
	for _, e := range out.Examples {
		if e = strings.TrimSpace(e); e != "" {
			examples = append(examples, e)
		}
	}
	if len(examples) > 0 {
		s.examples.Set(key, examples, 1)
	}
	return examples, nil
}

func exampleKey(word, topic string) string {
	return strings.ToLower(strings.TrimSpace(word)) + "|" + strings.ToLower(strings.TrimSpace(topic))
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
