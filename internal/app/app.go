package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/home"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/login"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/welcome"
	"github.com/lotushuong244-bit/englishmaster/internal/session"
	"github.com/lotushuong244-bit/englishmaster/internal/speech"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
)

// Options holds the services the TUI runs on. Catalog and Ledger are
// required; the rest may be nil, which disables the features that need them.
type Options struct {
	Catalog     *curriculum.Catalog
	Ledger      *progress.Ledger
	Oracle      session.Oracle
	Recognizer  *speech.TypedRecognizer
	Synthesizer speech.Synthesizer
	EventRepo   store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ledger *progress.Ledger
	now    func() time.Time
	width  int
	height int
}

// newAppModel starts at the welcome screen, which leads to the dashboard
// for a returning learner and to the login form otherwise.
func newAppModel(opts Options) AppModel {
	env := &screen.Env{
		Catalog:     opts.Catalog,
		Ledger:      opts.Ledger,
		Oracle:      opts.Oracle,
		Recognizer:  opts.Recognizer,
		Synthesizer: opts.Synthesizer,
		EventRepo:   opts.EventRepo,
	}

	var toHome, toLogin func() screen.Screen
	toHome = func() screen.Screen { return home.New(env, toLogin) }
	toLogin = func() screen.Screen { return login.New(env.Ledger, toHome) }

	next := toLogin
	if opts.Ledger.LoggedIn() {
		next = toHome
	}

	return AppModel{
		router: router.New(welcome.New(next)),
		ledger: opts.Ledger,
		now:    time.Now,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.CloseAll()
			return m, tea.Quit
		case "esc":
			if ic, ok := m.router.Active().(screen.InputCapturer); ok && ic.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats(), m.width)

	var footerHints []layout.KeyHint
	if khp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = khp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// stats returns the header summary, hidden until the learner logs in.
func (m AppModel) stats() layout.Stats {
	if m.ledger == nil || !m.ledger.LoggedIn() {
		return layout.Stats{}
	}
	u := m.ledger.Snapshot()
	return layout.Stats{
		XP:     u.XP,
		Level:  u.Level,
		Streak: progress.CurrentStreak(u, m.now()),
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Catalog == nil || opts.Ledger == nil {
		return fmt.Errorf("app: catalog and ledger are required")
	}
	model := newAppModel(opts)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := p.Run()
	model.router.CloseAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
