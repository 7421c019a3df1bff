package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/session"
	"github.com/lotushuong244-bit/englishmaster/internal/speech"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that hold resources, such as a running
// practice session, released when the screen leaves the stack.
type Closer interface {
	Close()
}

// InputCapturer is implemented by screens with a text field. While
// CapturingInput reports true, Esc goes to the screen instead of
// navigating back.
type InputCapturer interface {
	CapturingInput() bool
}

// Refresher is implemented by screens that show learner progress and
// reload it when they become active again.
type Refresher interface {
	Refresh() tea.Cmd
}

// Env carries the application services shared by all screens. Oracle,
// Recognizer, Synthesizer and EventRepo may be nil.
type Env struct {
	Catalog     *curriculum.Catalog
	Ledger      *progress.Ledger
	Oracle      session.Oracle
	Recognizer  *speech.TypedRecognizer
	Synthesizer speech.Synthesizer
	EventRepo   store.EventRepo
}

// SessionDeps returns the collaborators for a new practice session.
func (e *Env) SessionDeps() session.Deps {
	deps := session.Deps{
		Scorer:      e.Ledger,
		Oracle:      e.Oracle,
		Synthesizer: e.Synthesizer,
		EventRepo:   e.EventRepo,
	}
	if e.Recognizer != nil {
		deps.Recognizer = e.Recognizer
	}
	return deps
}
