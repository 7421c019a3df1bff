package session

import (
	"context"

	"github.com/lotushuong244-bit/englishmaster/internal/oracle"
)

// Ticket identifies the session state a task was started from. An outcome
// whose ticket no longer matches the session is stale and is dropped.
type Ticket struct {
	Step    int
	Attempt int
	Epoch   int
}

// TaskKind says what a task produces.
type TaskKind int

const (
	TaskExample  TaskKind = iota // Extra vocabulary example
	TaskListen                   // Transcript from the recognizer
	TaskEvaluate                 // Oracle feedback on a transcript
	TaskSpeak                    // Text-to-speech playback
)

func (k TaskKind) String() string {
	switch k {
	case TaskExample:
		return "example"
	case TaskListen:
		return "listen"
	case TaskEvaluate:
		return "evaluate"
	case TaskSpeak:
		return "speak"
	}
	return "unknown"
}

// Task is asynchronous work requested by the session. The caller runs it
// off the UI loop, normally under Session.Context, and hands the outcome
// back to Session.Apply.
type Task struct {
	Kind   TaskKind
	Ticket Ticket
	play   int
	run    func(ctx context.Context) Outcome
}

// Run executes the task.
func (t *Task) Run(ctx context.Context) Outcome {
	out := t.run(ctx)
	out.Kind = t.Kind
	out.Ticket = t.Ticket
	out.play = t.play
	return out
}

// scoped makes run stop when either its caller's context or scope ends.
func scoped(scope context.Context, run func(context.Context) Outcome) func(context.Context) Outcome {
	return func(ctx context.Context) Outcome {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(scope, cancel)
		defer stop()
		return run(ctx)
	}
}

// Outcome is the result of a task.
type Outcome struct {
	Kind   TaskKind
	Ticket Ticket

	Examples   []string
	Transcript string
	Feedback   oracle.Feedback
	Err        error

	play int
}
