// Package speech provides the audio side of practice: text-to-speech for
// words, sentences and listening transcripts, and a recognizer capability
// that yields what the learner said.
package speech

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when a speech capability is missing, such as
// no TTS credentials, no audio player or no recognizer.
var ErrUnavailable = errors.New("speech capability unavailable")

// Synthesizer speaks text aloud.
type Synthesizer interface {
	// Available reports whether Speak can work at all.
	Available() bool

	// Speak synthesizes text and plays it, returning when playback ends.
	Speak(ctx context.Context, text string) error
}

// Recognizer produces a transcript of one spoken attempt.
type Recognizer interface {
	// Available reports whether speech input is supported.
	Available() bool

	// Listen blocks until a transcript is ready or ctx is done.
	Listen(ctx context.Context) (string, error)
}

// Disabled is a Synthesizer and Recognizer with no capability.
type Disabled struct{}

func (Disabled) Available() bool { return false }

func (Disabled) Speak(context.Context, string) error { return ErrUnavailable }

func (Disabled) Listen(context.Context) (string, error) { return "", ErrUnavailable }
