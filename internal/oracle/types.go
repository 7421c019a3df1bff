package oracle

import (
	"fmt"
	"strings"
)

// Tier is the qualitative score bucket of an evaluation.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierGood      Tier = "Good"
	TierTryAgain  Tier = "Try Again"
)

// ParseTier maps a model's score string to a Tier. Matching ignores case
// and spacing so "try again" and "TryAgain" are accepted.
func ParseTier(s string) (Tier, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch norm {
	case "excellent":
		return TierExcellent, nil
	case "good":
		return TierGood, nil
	case "tryagain":
		return TierTryAgain, nil
	}
	return "", fmt.Errorf("unknown score tier %q", s)
}

// Feedback is the result of evaluating a spoken attempt.
type Feedback struct {
	Tier Tier
	Text string

	// Hint is the corrective pronunciation focus. Empty when there was
	// no mistake.
	Hint string

	// Fallback is set when the oracle could not be reached and the
	// feedback is the fixed substitute. Fallback feedback never scores.
	Fallback bool
}

// FallbackFeedback is substituted when evaluation fails, so the learner
// can still retry or move on.
func FallbackFeedback() Feedback {
	return Feedback{
		Tier:     TierGood,
		Text:     "Good effort! I couldn't connect to the AI judge, but keep practicing.",
		Fallback: true,
	}
}

// silentFeedback is returned without a model call when nothing was heard.
func silentFeedback() Feedback {
	return Feedback{
		Tier: TierTryAgain,
		Text: "I didn't catch anything. Try again a little louder.",
	}
}
