package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/oracle"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
)

// Advance moves to the next step, or completes the session after the last
// one. Listening and grammar are a single page and complete immediately.
func (s *Session) Advance(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkActive(); err != nil {
		return err
	}

	if isQuiz(s.mode) || s.step+1 >= s.count {
		s.complete(ctx)
		return nil
	}

	s.step++
	s.epoch++
	s.resetStep()
	return nil
}

// complete enters the final state. The bonus is only awarded the first time.
func (s *Session) complete(ctx context.Context) {
	s.stopPlayback()
	s.stopListening()
	s.phase = PhaseCompleted
	s.epoch++
	s.endedAt = s.deps.Now()

	if !s.bonusAwarded {
		s.bonusAwarded = true
		s.award(ctx, CompletionBonus, "completion-bonus")
		if _, err := s.deps.Scorer.CompleteMode(ctx, s.unit, s.mode); err != nil {
			s.deps.Logger.Warn("mark mode completed failed", "error", err)
		}
	}

	s.logEvent(ctx, "complete")
	s.deps.Logger.Info("practice completed", "xp", s.xpEarned)
}

func (s *Session) checkActive() error {
	if s.exited {
		return ErrExited
	}
	if s.phase == PhaseCompleted {
		return ErrCompleted
	}
	return nil
}

// award records points with the scorer. A failed write is logged; the
// session carries on without counting the points.
func (s *Session) award(ctx context.Context, points int, reason string) {
	if points <= 0 {
		return
	}
	_, err := s.deps.Scorer.RecordScore(ctx, progress.Award{
		Points:    points,
		Reason:    reason,
		UnitID:    s.unit.ID,
		Mode:      s.mode,
		SessionID: s.id,
	})
	if err != nil {
		s.deps.Logger.Warn("record score failed", "points", points, "reason", reason, "error", err)
		return
	}
	s.xpEarned += points
}

// Flip turns the current flashcard over.
func (s *Session) Flip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != curriculum.ModeVocab {
		return ErrWrongMode
	}
	if err := s.checkActive(); err != nil {
		return err
	}
	s.card.Flipped = !s.card.Flipped
	return nil
}

// RequestExample returns a task fetching an extra example for the current
// word. It returns nil when the step already has a request or no oracle
// is configured.
func (s *Session) RequestExample() (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != curriculum.ModeVocab {
		return nil, ErrWrongMode
	}
	if err := s.checkActive(); err != nil {
		return nil, err
	}
	if s.card.requested || s.deps.Oracle == nil {
		return nil, nil
	}
	s.card.requested = true
	s.card.Loading = true

	word, topic := s.unit.Vocab[s.step].Word, s.unit.Topic
	o := s.deps.Oracle
	return &Task{
		Kind:   TaskExample,
		Ticket: s.ticket(),
		run: func(ctx context.Context) Outcome {
			examples, err := o.Examples(ctx, word, topic)
			return Outcome{Examples: examples, Err: err}
		},
	}, nil
}

// Select sets the chosen option for question q, replacing any earlier
// choice.
func (s *Session) Select(q, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isQuiz(s.mode) {
		return ErrWrongMode
	}
	if s.quiz.Submitted {
		return ErrAlreadySubmitted
	}
	if err := s.checkActive(); err != nil {
		return err
	}
	qs := s.unit.Questions(s.mode)
	if q < 0 || q >= len(qs) || option < 0 || option >= len(qs[q].Options) {
		return fmt.Errorf("%w: question %d option %d", ErrInvalidSelection, q, option)
	}
	s.quiz.Selections[q] = option
	return nil
}

// CanSubmit reports whether every question has an answer and the page has
// not been submitted.
func (s *Session) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canSubmit()
}

func (s *Session) canSubmit() bool {
	if !isQuiz(s.mode) || s.quiz.Submitted {
		return false
	}
	for _, sel := range s.quiz.Selections {
		if sel < 0 {
			return false
		}
	}
	return true
}

// QuizResult is the grading of a submitted page.
type QuizResult struct {
	Correct int
	Total   int
	Points  int
}

// Submit grades the page, awarding QuizAnswerPoints for each correct
// answer. A page can be submitted once.
func (s *Session) Submit(ctx context.Context) (QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isQuiz(s.mode) {
		return QuizResult{}, ErrWrongMode
	}
	if s.quiz.Submitted {
		return QuizResult{}, ErrAlreadySubmitted
	}
	if err := s.checkActive(); err != nil {
		return QuizResult{}, err
	}
	if !s.canSubmit() {
		return QuizResult{}, ErrIncomplete
	}

	qs := s.unit.Questions(s.mode)
	before := s.xpEarned
	correct := 0
	for i, q := range qs {
		if q.IsCorrect(s.quiz.Selections[i]) {
			correct++
			s.award(ctx, QuizAnswerPoints, fmt.Sprintf("%s-q%d", s.mode, i+1))
		}
	}
	s.quiz.Submitted = true
	s.quiz.Correct = correct
	s.evaluated += len(qs)
	s.passed += correct

	s.deps.Logger.Info("quiz submitted", "correct", correct, "total", len(qs))
	return QuizResult{Correct: correct, Total: len(qs), Points: s.xpEarned - before}, nil
}

// Mark is the highlight of an option on a graded page.
type Mark int

const (
	MarkNone    Mark = iota
	MarkCorrect      // The right answer
	MarkWrong        // Selected but wrong
)

// QuestionReview is the graded view of one question.
type QuestionReview struct {
	Prompt   string
	Options  []string
	Marks    []Mark
	Selected int
	Correct  bool
}

// Review returns the graded page. The correct option is always marked;
// a wrong selection is marked wrong.
func (s *Session) Review() ([]QuestionReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isQuiz(s.mode) {
		return nil, ErrWrongMode
	}
	if !s.quiz.Submitted {
		return nil, ErrNotSubmitted
	}

	qs := s.unit.Questions(s.mode)
	out := make([]QuestionReview, len(qs))
	for i, q := range qs {
		sel := s.quiz.Selections[i]
		marks := make([]Mark, len(q.Options))
		marks[q.Correct] = MarkCorrect
		if sel != q.Correct {
			marks[sel] = MarkWrong
		}
		out[i] = QuestionReview{
			Prompt:   q.Prompt,
			Options:  q.Options,
			Marks:    marks,
			Selected: sel,
			Correct:  sel == q.Correct,
		}
	}
	return out, nil
}

// ToggleTranscript shows or hides the listening transcript.
func (s *Session) ToggleTranscript() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != curriculum.ModeListening {
		return ErrWrongMode
	}
	s.quiz.ShowTranscript = !s.quiz.ShowTranscript
	return nil
}

// StartRecording begins an attempt at the current target and returns the
// task that waits for the transcript.
func (s *Session) StartRecording() (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isRecording(s.mode) {
		return nil, ErrWrongMode
	}
	if err := s.checkActive(); err != nil {
		return nil, err
	}
	rec := s.deps.Recognizer
	if rec == nil || !rec.Available() {
		return nil, ErrCapabilityUnavailable
	}
	switch s.recorder.State {
	case RecorderRecording, RecorderEvaluating:
		return nil, ErrBusy
	}

	s.attempt++
	s.recorder.State = RecorderRecording
	s.recorder.Notice = ""

	lctx, cancel := context.WithCancel(s.ctx)
	s.stopListen = cancel
	return &Task{
		Kind:   TaskListen,
		Ticket: s.ticket(),
		run: scoped(lctx, func(ctx context.Context) Outcome {
			text, err := rec.Listen(ctx)
			return Outcome{Transcript: text, Err: err}
		}),
	}, nil
}

func (s *Session) stopListening() {
	if s.stopListen != nil {
		s.stopListen()
		s.stopListen = nil
	}
}

// StopRecording abandons the current recording and stops its listen task.
// A transcript that arrives afterwards is discarded.
func (s *Session) StopRecording() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isRecording(s.mode) {
		return ErrWrongMode
	}
	if s.recorder.State != RecorderRecording {
		return nil
	}
	s.attempt++
	s.stopListening()
	s.recorder = Recorder{State: RecorderIdle}
	return nil
}

// Retry clears the last transcript and feedback so the learner can record
// again.
func (s *Session) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isRecording(s.mode) {
		return ErrWrongMode
	}
	if err := s.checkActive(); err != nil {
		return err
	}
	switch s.recorder.State {
	case RecorderRecording, RecorderEvaluating:
		return ErrBusy
	}
	s.recorder = Recorder{State: RecorderIdle}
	return nil
}

// PlayAudio returns a task that reads the current content aloud: the word
// or, once flipped, the example sentence of a flashcard, the listening
// transcript, or the target of a speaking or pronunciation step. Any
// playback still running is cancelled first.
func (s *Session) PlayAudio() (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exited {
		return nil, ErrExited
	}
	var text string
	switch s.mode {
	case curriculum.ModeVocab:
		w := s.unit.Vocab[s.step]
		text = w.Word
		if s.card.Flipped {
			text = w.Example
		}
	case curriculum.ModeListening:
		text = s.unit.Listening.Transcript
	case curriculum.ModeSpeaking, curriculum.ModePronunciation:
		text = s.target()
	default:
		return nil, ErrWrongMode
	}

	syn := s.deps.Synthesizer
	if syn == nil || !syn.Available() {
		return nil, ErrCapabilityUnavailable
	}

	s.stopPlayback()
	s.playing = true
	pctx, cancel := context.WithCancel(s.ctx)
	s.stopPlay = cancel
	return &Task{
		Kind:   TaskSpeak,
		Ticket: s.ticket(),
		play:   s.play,
		run: scoped(pctx, func(ctx context.Context) Outcome {
			return Outcome{Err: syn.Speak(ctx, text)}
		}),
	}, nil
}

// stopPlayback cancels the running playback and makes its outcome stale.
func (s *Session) stopPlayback() {
	if s.stopPlay != nil {
		s.stopPlay()
		s.stopPlay = nil
	}
	s.play++
	s.playing = false
}

// Apply folds a task outcome into the session. It reports false when the
// outcome is stale, because the learner moved on, re-recorded or exited.
// A transcript outcome yields the evaluation task to run next.
func (s *Session) Apply(ctx context.Context, out Outcome) (*Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if out.Kind == TaskSpeak && !s.exited {
		// A recording may start while audio plays, so playback is matched
		// by its number rather than by ticket.
		if out.play != s.play || !s.playing {
			return nil, false
		}
		s.stopPlayback()
		if out.Err != nil && !errors.Is(out.Err, context.Canceled) {
			s.deps.Logger.Warn("playback failed", "error", out.Err)
			if isRecording(s.mode) {
				s.recorder.Notice = "Audio playback failed."
			}
		}
		return nil, true
	}
	if s.exited || out.Ticket != s.ticket() {
		s.deps.Logger.Debug("stale outcome dropped", "kind", out.Kind.String())
		return nil, false
	}

	switch out.Kind {
	case TaskExample:
		if s.mode != curriculum.ModeVocab || s.phase == PhaseCompleted {
			return nil, false
		}
		s.card.Loading = false
		if out.Err != nil {
			s.deps.Logger.Warn("example request failed", "error", out.Err)
			return nil, true
		}
		if len(out.Examples) > 0 {
			s.card.Example = out.Examples[0]
		}
		return nil, true

	case TaskListen:
		if s.recorder.State != RecorderRecording {
			return nil, false
		}
		s.stopListening()
		if out.Err != nil {
			s.recorder.State = RecorderIdle
			if !errors.Is(out.Err, context.Canceled) {
				s.recorder.Notice = fmt.Sprintf("Couldn't hear you: %v", out.Err)
			}
			return nil, true
		}
		return s.beginEvaluation(out.Transcript), true

	case TaskEvaluate:
		if s.recorder.State != RecorderEvaluating {
			return nil, false
		}
		fb := out.Feedback
		if fb.Tier == "" {
			fb = oracle.FallbackFeedback()
		}
		s.recorder.State = RecorderFeedback
		s.recorder.Feedback = &fb

		if out.Err != nil || fb.Fallback {
			s.deps.Logger.Warn("evaluation fell back", "error", out.Err)
			return nil, true
		}
		s.evaluated++
		if fb.Tier != oracle.TierTryAgain {
			s.passed++
		}
		s.award(ctx, TierPoints(fb.Tier), fmt.Sprintf("%s-%s", s.mode, fb.Tier))
		return nil, true
	}
	return nil, false
}

// beginEvaluation moves the recorder to evaluating and builds the oracle
// call for transcript.
func (s *Session) beginEvaluation(transcript string) *Task {
	s.recorder.State = RecorderEvaluating
	s.recorder.Transcript = transcript

	target, o := s.target(), s.deps.Oracle
	return &Task{
		Kind:   TaskEvaluate,
		Ticket: s.ticket(),
		run: func(ctx context.Context) Outcome {
			if o == nil {
				return Outcome{Feedback: oracle.FallbackFeedback()}
			}
			fb, err := o.Evaluate(ctx, target, transcript)
			return Outcome{Feedback: fb, Err: err}
		},
	}
}

// Exit ends the session. In-flight tasks are cancelled and their outcomes
// dropped. Calling Exit more than once is a no-op.
func (s *Session) Exit(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exited {
		return
	}
	s.exited = true
	s.epoch++
	s.stopPlayback()
	s.stopListening()
	s.cancel()
	if s.endedAt.IsZero() {
		s.endedAt = s.deps.Now()
	}
	if s.phase != PhaseCompleted {
		s.logEvent(ctx, "exit")
	}
	s.deps.Logger.Info("practice closed", "completed", s.phase == PhaseCompleted)
}

func (s *Session) logEvent(ctx context.Context, action string) {
	if s.deps.EventRepo == nil {
		return
	}
	end := s.endedAt
	if end.IsZero() {
		end = s.startedAt
	}
	err := s.deps.EventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      s.id,
		UnitID:         s.unit.ID,
		Mode:           string(s.mode),
		Action:         action,
		XPEarned:       s.xpEarned,
		CorrectAnswers: s.passed,
		Questions:      s.evaluated,
		DurationSecs:   int(end.Sub(s.startedAt).Seconds()),
	})
	if err != nil {
		s.deps.Logger.Warn("session event not saved", "action", action, "error", err)
	}
}
