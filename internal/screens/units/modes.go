package units

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/practice"
	"github.com/lotushuong244-bit/englishmaster/internal/session"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/components"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

// ModeMenuScreen lists the practice modes one unit offers.
type ModeMenuScreen struct {
	env    *screen.Env
	unit   *curriculum.Unit
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*ModeMenuScreen)(nil)
var _ screen.Refresher = (*ModeMenuScreen)(nil)
var _ screen.KeyHintProvider = (*ModeMenuScreen)(nil)

// NewModeMenu creates the mode menu for unit.
func NewModeMenu(env *screen.Env, unit *curriculum.Unit) *ModeMenuScreen {
	m := &ModeMenuScreen{env: env, unit: unit}
	m.reload()
	return m
}

func (m *ModeMenuScreen) reload() {
	user := m.env.Ledger.Snapshot()

	var items []components.MenuItem
	for _, mode := range m.unit.Modes() {
		item := components.MenuItem{
			Label:  mode.DisplayName(),
			Detail: modeDetail(m.unit, mode),
			Action: func() tea.Cmd { return m.start(mode) },
		}
		if user.HasCompletedMode(m.unit.ID, mode) {
			item.Marker = "✓"
		}
		items = append(items, item)
	}

	selected := m.menu.Selected
	m.menu = components.NewMenu(items)
	if selected < len(items) {
		m.menu.Selected = selected
	}
}

// modeDetail describes the size of a practice.
func modeDetail(u *curriculum.Unit, mode curriculum.Mode) string {
	switch mode {
	case curriculum.ModeVocab:
		return fmt.Sprintf("%d words", len(u.Vocab))
	case curriculum.ModeSpeaking:
		return fmt.Sprintf("%d sentences", len(u.Speaking))
	case curriculum.ModePronunciation:
		return fmt.Sprintf("%d words · %s", len(u.Pronunciation.Words), u.Pronunciation.Topic)
	case curriculum.ModeListening, curriculum.ModeGrammar:
		return fmt.Sprintf("%d questions", len(u.Questions(mode)))
	}
	return ""
}

func (m *ModeMenuScreen) start(mode curriculum.Mode) tea.Cmd {
	sess, err := session.New(context.Background(), m.unit, mode, m.env.SessionDeps())
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.errMsg = ""
	p := practice.New(m.env, sess)
	return func() tea.Msg { return router.PushScreenMsg{Screen: p} }
}

func (m *ModeMenuScreen) Init() tea.Cmd {
	return nil
}

// Refresh updates completion marks after a practice session.
func (m *ModeMenuScreen) Refresh() tea.Cmd {
	m.reload()
	return nil
}

func (m *ModeMenuScreen) Title() string {
	return fmt.Sprintf("Unit %d", m.unit.ID)
}

func (m *ModeMenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *ModeMenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *ModeMenuScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	accent := theme.UnitColor(m.unit.Color)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).
		Render(fmt.Sprintf("Unit %d · %s", m.unit.ID, m.unit.Title)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(m.unit.Topic))
	if m.unit.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(m.unit.Description))
	}
	header := components.Panel(b.String(), cw, accent)

	body := header + "\n\n" + m.menu.View()
	if m.errMsg != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(m.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
