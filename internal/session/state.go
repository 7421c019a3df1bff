package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/oracle"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/speech"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
)

// Point values for practice events.
const (
	CompletionBonus  = 50
	QuizAnswerPoints = 10
	ExcellentPoints  = 10
	GoodPoints       = 5
)

// TierPoints returns the XP awarded for an evaluation tier.
func TierPoints(t oracle.Tier) int {
	switch t {
	case oracle.TierExcellent:
		return ExcellentPoints
	case oracle.TierGood:
		return GoodPoints
	}
	return 0
}

// Oracle is the feedback service used by speaking, pronunciation and
// vocabulary practice.
type Oracle interface {
	Evaluate(ctx context.Context, target, transcript string) (oracle.Feedback, error)
	Examples(ctx context.Context, word, topic string) ([]string, error)
}

// Scorer receives the session's XP awards and completions.
type Scorer interface {
	RecordScore(ctx context.Context, a progress.Award) (progress.ScoreResult, error)
	CompleteMode(ctx context.Context, unit *curriculum.Unit, mode curriculum.Mode) (bool, error)
}

// Deps are the collaborators of a session. Scorer is required; the rest
// may be nil, which disables the features that need them.
type Deps struct {
	Scorer      Scorer
	Oracle      Oracle
	Recognizer  speech.Recognizer
	Synthesizer speech.Synthesizer

	// EventRepo records session start, completion and exit.
	EventRepo store.EventRepo

	Logger *slog.Logger
	Now    func() time.Time
}

// Phase is the top-level session state.
type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseCompleted
)

// RecorderState is the state of a speaking or pronunciation attempt.
type RecorderState int

const (
	RecorderIdle       RecorderState = iota // Waiting for the learner to record
	RecorderRecording                       // Listening for a transcript
	RecorderEvaluating                      // Transcript sent to the oracle
	RecorderFeedback                        // Feedback shown
)

func (r RecorderState) String() string {
	switch r {
	case RecorderIdle:
		return "idle"
	case RecorderRecording:
		return "recording"
	case RecorderEvaluating:
		return "evaluating"
	case RecorderFeedback:
		return "feedback"
	}
	return "unknown"
}

// VocabCard is the flashcard sub-state of a vocabulary step.
type VocabCard struct {
	// Flipped is true when the meaning side is shown.
	Flipped bool

	// Example is the extra example sentence from the oracle, if any.
	Example string

	// Loading is true while the example request is in flight.
	Loading bool

	requested bool
}

// QuizPage is the answer sheet of a listening or grammar page.
type QuizPage struct {
	// Selections holds the chosen option per question, -1 when unanswered.
	Selections []int

	// Submitted is set once the answers have been graded.
	Submitted bool

	// Correct is the number of correct answers after submission.
	Correct int

	// ShowTranscript toggles the listening transcript.
	ShowTranscript bool
}

// Recorder is the sub-state of a speaking or pronunciation step.
type Recorder struct {
	State      RecorderState
	Transcript string
	Feedback   *oracle.Feedback

	// Notice is a short message for the learner, such as a recognition
	// failure.
	Notice string
}

// Session is one practice run of a single mode of a single unit. All
// methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id   string
	unit *curriculum.Unit
	mode curriculum.Mode
	deps Deps

	ctx    context.Context
	cancel context.CancelFunc

	phase Phase
	step  int
	count int

	// attempt and epoch identify the current ticket. attempt changes with
	// each recording within a step; epoch changes on every step change
	// and on exit.
	attempt int
	epoch   int

	bonusAwarded bool
	exited       bool

	// Only one playback runs at a time. play numbers playbacks so the
	// outcome of a replaced one does not clear playing.
	playing    bool
	play       int
	stopPlay   context.CancelFunc
	stopListen context.CancelFunc

	card     VocabCard
	quiz     QuizPage
	recorder Recorder

	xpEarned  int
	evaluated int
	passed    int
	startedAt time.Time
	endedAt   time.Time
}

// New starts a session for mode in unit. It returns ErrModeUnavailable
// when the unit has no content for the mode.
func New(ctx context.Context, unit *curriculum.Unit, mode curriculum.Mode, deps Deps) (*Session, error) {
	if unit == nil || !unit.Offers(mode) {
		return nil, ErrModeUnavailable
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	sctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s := &Session{
		id:        uuid.New().String(),
		unit:      unit,
		mode:      mode,
		deps:      deps,
		ctx:       sctx,
		cancel:    cancel,
		count:     unit.ItemCount(mode),
		startedAt: deps.Now(),
	}
	s.deps.Logger = deps.Logger.With("session", s.id, "unit", unit.ID, "mode", string(mode))
	s.resetStep()

	s.logEvent(ctx, "start")
	s.deps.Logger.Info("practice started", "steps", s.count)
	return s, nil
}

// resetStep clears the transient sub-state for the current step.
func (s *Session) resetStep() {
	s.stopPlayback()
	s.stopListening()
	s.card = VocabCard{}
	s.recorder = Recorder{}
	s.attempt = 0
	if isQuiz(s.mode) && s.quiz.Selections == nil {
		qs := s.unit.Questions(s.mode)
		s.quiz.Selections = make([]int, len(qs))
		for i := range s.quiz.Selections {
			s.quiz.Selections[i] = -1
		}
	}
}

func isQuiz(m curriculum.Mode) bool {
	return m == curriculum.ModeListening || m == curriculum.ModeGrammar
}

func isRecording(m curriculum.Mode) bool {
	return m == curriculum.ModeSpeaking || m == curriculum.ModePronunciation
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Unit returns the unit being practised.
func (s *Session) Unit() *curriculum.Unit { return s.unit }

// Mode returns the practice mode.
func (s *Session) Mode() curriculum.Mode { return s.mode }

// Context returns the session context. It is cancelled by Exit and is
// the context tasks should run under.
func (s *Session) Context() context.Context { return s.ctx }

// Step returns the zero-based index of the current step.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Count returns the number of steps.
func (s *Session) Count() int { return s.count }

// Completed reports whether the session reached its final state.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseCompleted
}

// Progress returns the completion percentage shown in the header.
func (s *Session) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress()
}

func (s *Session) progress() int {
	if s.phase == PhaseCompleted {
		return 100
	}
	if isQuiz(s.mode) {
		return 50
	}
	return (s.step + 1) * 100 / s.count
}

// Card returns the flashcard state of the current vocabulary step.
func (s *Session) Card() VocabCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.card
}

// Quiz returns a copy of the quiz answer sheet.
func (s *Session) Quiz() QuizPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.quiz
	q.Selections = append([]int(nil), s.quiz.Selections...)
	return q
}

// Playing reports whether audio started by PlayAudio is still playing.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Recorder returns the recording state of the current step. The previous
// transcript and feedback are hidden while recording.
func (s *Session) Recorder() Recorder {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.recorder
	if r.Feedback != nil {
		fb := *r.Feedback
		r.Feedback = &fb
	}
	return r
}

// XPEarned returns the XP awarded in this session so far.
func (s *Session) XPEarned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.xpEarned
}

// VocabWord returns the card of the current vocabulary step.
func (s *Session) VocabWord() (curriculum.VocabWord, bool) {
	if s.mode != curriculum.ModeVocab {
		return curriculum.VocabWord{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unit.Vocab[s.step], true
}

// Challenge returns the sentence of the current speaking step.
func (s *Session) Challenge() (curriculum.SpeakingChallenge, bool) {
	if s.mode != curriculum.ModeSpeaking {
		return curriculum.SpeakingChallenge{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unit.Speaking[s.step], true
}

// PronunciationWord returns the word of the current pronunciation step.
func (s *Session) PronunciationWord() (curriculum.PronunciationWord, bool) {
	if s.mode != curriculum.ModePronunciation {
		return curriculum.PronunciationWord{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unit.Pronunciation.Words[s.step], true
}

// Target returns the text the learner should say in the current step.
func (s *Session) Target() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target()
}

func (s *Session) target() string {
	switch s.mode {
	case curriculum.ModeSpeaking:
		return s.unit.Speaking[s.step].Sentence
	case curriculum.ModePronunciation:
		return s.unit.Pronunciation.Words[s.step].Word
	case curriculum.ModeVocab:
		return s.unit.Vocab[s.step].Word
	}
	return ""
}

func (s *Session) ticket() Ticket {
	return Ticket{Step: s.step, Attempt: s.attempt, Epoch: s.epoch}
}
