package speech

import (
	"context"
	"strings"
	"sync"
)

// TypedRecognizer is a Recognizer fed by the terminal: the practice screen
// collects what the learner says into a text field and hands it over with
// Submit. It stands in for a microphone, which a terminal does not have.
type TypedRecognizer struct {
	mu      sync.Mutex
	waiting chan string
}

// NewTypedRecognizer creates a TypedRecognizer.
func NewTypedRecognizer() *TypedRecognizer {
	return &TypedRecognizer{}
}

func (r *TypedRecognizer) Available() bool { return true }

// Listen waits for the next Submit. Only one Listen may wait at a time; a
// new Listen replaces the previous one, which then waits until its
// context ends.
func (r *TypedRecognizer) Listen(ctx context.Context) (string, error) {
	ch := make(chan string, 1)

	r.mu.Lock()
	r.waiting = ch
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		if r.waiting == ch {
			r.waiting = nil
		}
		r.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text := <-ch:
		return text, nil
	}
}

// Submit delivers a transcript to the waiting Listen. It reports false when
// nobody is listening.
func (r *TypedRecognizer) Submit(text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.waiting == nil {
		return false
	}
	r.waiting <- strings.TrimSpace(text)
	r.waiting = nil
	return true
}

// Listening reports whether a Listen is waiting for input.
func (r *TypedRecognizer) Listening() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.waiting != nil
}
