package curriculum

// Mode is a practice mode offered by a unit.
type Mode string

const (
	ModeVocab         Mode = "vocab"
	ModeListening     Mode = "listening"
	ModeSpeaking      Mode = "speaking"
	ModeGrammar       Mode = "grammar"
	ModePronunciation Mode = "pronunciation"
)

// AllModes returns every mode in menu order.
func AllModes() []Mode {
	return []Mode{
		ModeVocab,
		ModeListening,
		ModeGrammar,
		ModePronunciation,
		ModeSpeaking,
	}
}

// DisplayName returns a human-readable name for a mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeVocab:
		return "Vocabulary"
	case ModeListening:
		return "Listening"
	case ModeSpeaking:
		return "Speaking"
	case ModeGrammar:
		return "Grammar"
	case ModePronunciation:
		return "Pronunciation"
	default:
		return string(m)
	}
}

// ParseMode parses a mode name as written in the store and on the command line.
func ParseMode(s string) (Mode, bool) {
	for _, m := range AllModes() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Unit is one themed lesson of the course.
type Unit struct {
	ID            int                    `json:"id"`
	Order         int                    `json:"order"`
	Title         string                 `json:"title"`
	Topic         string                 `json:"topic"`
	Description   string                 `json:"description"`
	Color         string                 `json:"color"`
	Image         string                 `json:"image,omitempty"`
	Vocab         []VocabWord            `json:"vocab"`
	Listening     ListeningExercise      `json:"listening"`
	Speaking      []SpeakingChallenge    `json:"speaking"`
	Grammar       *GrammarExercise       `json:"grammar,omitempty"`
	Pronunciation *PronunciationExercise `json:"pronunciation,omitempty"`
}

// VocabWord is a single flashcard.
type VocabWord struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Meaning  string `json:"meaning"`
	Example  string `json:"example"`
	Image    string `json:"image,omitempty"`
}

// Question is a multiple-choice question. Correct indexes into Options.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// IsCorrect reports whether option is the right answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.Correct
}

// ListeningExercise is a transcript with comprehension questions.
type ListeningExercise struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Transcript string     `json:"transcript"`
	Questions  []Question `json:"questions"`
}

// GrammarExercise is a rule card with practice questions.
type GrammarExercise struct {
	ID        string     `json:"id"`
	Topic     string     `json:"topic"`
	Rule      string     `json:"rule"`
	Questions []Question `json:"questions"`
}

// SpeakingChallenge is a sentence to read aloud in a situation.
type SpeakingChallenge struct {
	ID       string `json:"id"`
	Sentence string `json:"sentence"`
	Context  string `json:"context"`
}

// PronunciationExercise drills word stress.
type PronunciationExercise struct {
	ID    string              `json:"id"`
	Topic string              `json:"topic"`
	Rule  string              `json:"rule"`
	Words []PronunciationWord `json:"words"`
}

// PronunciationWord is a word split into syllables. Stress indexes into Syllables.
type PronunciationWord struct {
	Word      string   `json:"word"`
	Syllables []string `json:"syllables"`
	Stress    int      `json:"stress"`
}

// Classmate is a roster entry shown on the leaderboard.
type Classmate struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	ClassID   string `json:"class_id"`
	XP        int    `json:"xp"`
}

// Modes returns the modes this unit offers, in menu order.
func (u *Unit) Modes() []Mode {
	var modes []Mode
	for _, m := range AllModes() {
		if u.Offers(m) {
			modes = append(modes, m)
		}
	}
	return modes
}

// Offers reports whether the unit has content for the mode.
func (u *Unit) Offers(m Mode) bool {
	return u.ItemCount(m) > 0
}

// ItemCount returns the number of steps a practice session in mode has.
// Listening and grammar are a single page; zero means the mode is unavailable.
func (u *Unit) ItemCount(m Mode) int {
	switch m {
	case ModeVocab:
		return len(u.Vocab)
	case ModeSpeaking:
		return len(u.Speaking)
	case ModeListening:
		if len(u.Listening.Questions) == 0 {
			return 0
		}
		return 1
	case ModeGrammar:
		if u.Grammar == nil || len(u.Grammar.Questions) == 0 {
			return 0
		}
		return 1
	case ModePronunciation:
		if u.Pronunciation == nil {
			return 0
		}
		return len(u.Pronunciation.Words)
	}
	return 0
}

// Questions returns the quiz questions for listening or grammar, nil otherwise.
func (u *Unit) Questions(m Mode) []Question {
	switch m {
	case ModeListening:
		return u.Listening.Questions
	case ModeGrammar:
		if u.Grammar != nil {
			return u.Grammar.Questions
		}
	}
	return nil
}
