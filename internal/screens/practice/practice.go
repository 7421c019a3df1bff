package practice

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/summary"
	sess "github.com/lotushuong244-bit/englishmaster/internal/session"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/components"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
)

// PracticeScreen runs one practice session.
type PracticeScreen struct {
	env  *screen.Env
	sess *sess.Session

	// question and option cursors for listening and grammar
	qCursor   int
	optCursor int

	// input collects the typed transcript while recording.
	input  components.TextInput
	typing bool

	notice string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.Closer = (*PracticeScreen)(nil)
var _ screen.InputCapturer = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen for a started session.
func New(env *screen.Env, s *sess.Session) *PracticeScreen {
	return &PracticeScreen{
		env:   env,
		sess:  s,
		input: components.NewTextInput("", "Type what you said...", 200),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.requestExample()
}

// Close ends the session when the screen leaves the stack.
func (p *PracticeScreen) Close() {
	p.sess.Exit(context.Background())
}

// CapturingInput reports whether the transcript field has focus.
func (p *PracticeScreen) CapturingInput() bool {
	return p.typing
}

func (p *PracticeScreen) Title() string {
	return p.sess.Mode().DisplayName()
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	switch p.sess.Mode() {
	case curriculum.ModeVocab:
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "P", Description: "Listen"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Exit"},
		}
	case curriculum.ModeListening, curriculum.ModeGrammar:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "←→/1-4", Description: "Answer"},
		}
		if p.sess.Mode() == curriculum.ModeListening {
			hints = append(hints,
				layout.KeyHint{Key: "P", Description: "Play"},
				layout.KeyHint{Key: "T", Description: "Transcript"},
			)
		}
		if p.sess.Quiz().Submitted {
			return append(hints, layout.KeyHint{Key: "Enter", Description: "Finish"})
		}
		return append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	default:
		return []layout.KeyHint{
			{Key: "R", Description: "Record"},
			{Key: "P", Description: "Listen"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Exit"},
		}
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		return p, p.applyOutcome(msg.Outcome)

	case tea.KeyMsg:
		if p.typing {
			return p, p.handleTyping(msg)
		}
		return p, p.handleKey(msg.String())
	}

	if p.typing {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PracticeScreen) applyOutcome(out sess.Outcome) tea.Cmd {
	next, applied := p.sess.Apply(p.sess.Context(), out)
	if !applied {
		return nil
	}
	if out.Kind == sess.TaskListen {
		p.stopTyping()
	}
	return runTask(p.sess.Context(), next)
}

func (p *PracticeScreen) handleKey(key string) tea.Cmd {
	p.notice = ""
	switch p.sess.Mode() {
	case curriculum.ModeVocab:
		return p.handleVocabKey(key)
	case curriculum.ModeListening, curriculum.ModeGrammar:
		return p.handleQuizKey(key)
	default:
		return p.handleRecordingKey(key)
	}
}

func (p *PracticeScreen) handleVocabKey(key string) tea.Cmd {
	switch key {
	case "space", "f":
		p.report(p.sess.Flip())
	case "p":
		return p.play()
	case "enter", "n", "right":
		return p.advance()
	}
	return nil
}

func (p *PracticeScreen) handleQuizKey(key string) tea.Cmd {
	questions := p.sess.Unit().Questions(p.sess.Mode())
	switch key {
	case "up", "k":
		if p.qCursor > 0 {
			p.qCursor--
		}
		p.optCursor = max(p.sess.Quiz().Selections[p.qCursor], 0)
	case "down", "j":
		if p.qCursor < len(questions)-1 {
			p.qCursor++
		}
		p.optCursor = max(p.sess.Quiz().Selections[p.qCursor], 0)
	case "left", "h":
		if p.optCursor > 0 {
			p.optCursor--
		}
		p.report(p.sess.Select(p.qCursor, p.optCursor))
	case "right", "l":
		if p.optCursor < len(questions[p.qCursor].Options)-1 {
			p.optCursor++
		}
		p.report(p.sess.Select(p.qCursor, p.optCursor))
	case "1", "2", "3", "4", "a", "b", "c", "d":
		opt := optionIndex(key)
		if err := p.sess.Select(p.qCursor, opt); err != nil {
			p.report(err)
			return nil
		}
		p.optCursor = opt
		if p.qCursor < len(questions)-1 {
			p.qCursor++
			p.optCursor = max(p.sess.Quiz().Selections[p.qCursor], 0)
		}
	case "t":
		p.report(p.sess.ToggleTranscript())
	case "p":
		return p.play()
	case "enter":
		if p.sess.Quiz().Submitted {
			return p.advance()
		}
		res, err := p.sess.Submit(p.sess.Context())
		if err != nil {
			p.report(err)
			return nil
		}
		p.notice = scoreLine(res)
	}
	return nil
}

func optionIndex(key string) int {
	switch key {
	case "1", "a":
		return 0
	case "2", "b":
		return 1
	case "3", "c":
		return 2
	}
	return 3
}

func (p *PracticeScreen) handleRecordingKey(key string) tea.Cmd {
	switch key {
	case "r", "space":
		return p.record()
	case "p":
		return p.play()
	case "enter", "n":
		if p.sess.Recorder().State == sess.RecorderEvaluating {
			p.notice = "Still checking your answer..."
			return nil
		}
		return p.advance()
	}
	return nil
}

// record starts a new attempt, clearing the previous feedback first.
func (p *PracticeScreen) record() tea.Cmd {
	if p.sess.Recorder().State == sess.RecorderFeedback {
		if err := p.sess.Retry(); err != nil {
			p.report(err)
			return nil
		}
	}
	task, err := p.sess.StartRecording()
	if err != nil {
		p.report(err)
		return nil
	}
	p.typing = true
	p.input.Reset()
	p.input.Focus()
	return runTask(p.sess.Context(), task)
}

func (p *PracticeScreen) handleTyping(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if p.env.Recognizer != nil && p.env.Recognizer.Submit(p.input.Value()) {
			p.input.Blur()
		}
		return nil
	case "esc":
		p.stopTyping()
		p.report(p.sess.StopRecording())
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *PracticeScreen) stopTyping() {
	p.typing = false
	p.input.Blur()
}

func (p *PracticeScreen) play() tea.Cmd {
	task, err := p.sess.PlayAudio()
	if err != nil {
		p.report(err)
		return nil
	}
	return runTask(p.sess.Context(), task)
}

// advance moves to the next step, or to the summary once the session is
// completed.
func (p *PracticeScreen) advance() tea.Cmd {
	if err := p.sess.Advance(p.sess.Context()); err != nil {
		p.report(err)
		return nil
	}
	if p.sess.Completed() {
		next := summary.New(p.sess.Summary())
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	p.qCursor, p.optCursor = 0, 0
	return p.requestExample()
}

func (p *PracticeScreen) requestExample() tea.Cmd {
	if p.sess.Mode() != curriculum.ModeVocab {
		return nil
	}
	task, err := p.sess.RequestExample()
	if err != nil {
		return nil
	}
	return runTask(p.sess.Context(), task)
}

// report turns a session error into a notice for the learner.
func (p *PracticeScreen) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, sess.ErrCapabilityUnavailable):
		p.notice = "Speech isn't available on this computer."
	case errors.Is(err, sess.ErrIncomplete):
		p.notice = "Answer every question before submitting."
	case errors.Is(err, sess.ErrBusy):
		p.notice = "Hold on, still working on your last try."
	case errors.Is(err, sess.ErrAlreadySubmitted):
		p.notice = "Answers are already checked. Press Enter to finish."
	default:
		p.notice = err.Error()
	}
}
