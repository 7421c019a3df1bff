package llm

import (
	"context"
	"fmt"
	"slices"
)

// Purpose names why the app called the model. It is stored with every
// request event and used to group usage.
type Purpose string

const (
	PurposeFeedback Purpose = "pronunciation-feedback"
	PurposeExamples Purpose = "vocab-examples"
	PurposeUnknown  Purpose = "unknown"
)

// Purposes lists the purposes the app issues requests for.
func Purposes() []Purpose {
	return []Purpose{PurposeFeedback, PurposeExamples}
}

// ParsePurpose accepts one of Purposes.
func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !slices.Contains(Purposes(), p) {
		return "", fmt.Errorf("unknown purpose %q (want %s or %s)", s, PurposeFeedback, PurposeExamples)
	}
	return p, nil
}

type purposeKey struct{}

// WithPurpose tags ctx so decorators can attribute the request.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the tag set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
