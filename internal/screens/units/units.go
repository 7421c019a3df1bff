package units

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

// CourseMapScreen lists the units in course order with their lock state.
type CourseMapScreen struct {
	env       *screen.Env
	units     []curriculum.Unit
	completed []int
	cursor    int
	notice    string
}

var _ screen.Screen = (*CourseMapScreen)(nil)
var _ screen.Refresher = (*CourseMapScreen)(nil)
var _ screen.KeyHintProvider = (*CourseMapScreen)(nil)

// New creates a CourseMapScreen with the cursor on the first open unit.
func New(env *screen.Env) *CourseMapScreen {
	s := &CourseMapScreen{env: env, units: env.Catalog.Units()}
	s.reload()
	for i := range s.units {
		if s.status(i) == curriculum.StatusOpen {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *CourseMapScreen) reload() {
	s.completed = s.env.Ledger.Snapshot().CompletedUnits
}

func (s *CourseMapScreen) status(i int) curriculum.UnitStatus {
	return curriculum.Status(s.units, i, s.completed)
}

func (s *CourseMapScreen) Init() tea.Cmd {
	return nil
}

// Refresh reloads completion after a practice session.
func (s *CourseMapScreen) Refresh() tea.Cmd {
	s.reload()
	return nil
}

func (s *CourseMapScreen) Title() string {
	return "Course Map"
}

func (s *CourseMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open unit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CourseMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		s.notice = ""
	case "down", "j":
		if s.cursor < len(s.units)-1 {
			s.cursor++
		}
		s.notice = ""
	case "enter":
		return s, s.open()
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *CourseMapScreen) open() tea.Cmd {
	if len(s.units) == 0 {
		return nil
	}
	if s.status(s.cursor) == curriculum.StatusLocked {
		prev := s.units[s.cursor-1]
		s.notice = fmt.Sprintf("Finish Unit %d (%s) to unlock this unit.", prev.ID, prev.Title)
		return nil
	}
	u := &s.units[s.cursor]
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: NewModeMenu(s.env, u)}
	}
}

func (s *CourseMapScreen) View(width, height int) string {
	if len(s.units) == 0 {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).Render("\n\nNo units in this course.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, u := range s.units {
		b.WriteString(s.renderUnitRow(i, u, i == s.cursor, width))
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice), width))
	}
	return b.String()
}

func (s *CourseMapScreen) renderUnitRow(i int, u curriculum.Unit, selected bool, width int) string {
	var icon string
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	switch s.status(i) {
	case curriculum.StatusCompleted:
		icon = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case curriculum.StatusLocked:
		icon = "🔒"
		nameStyle = theme.Locked
	default:
		icon = lipgloss.NewStyle().Foreground(theme.UnitColor(u.Color)).Render("●")
	}

	prefix := "  "
	if selected {
		prefix = "▸ "
		nameStyle = nameStyle.Bold(true)
		if s.status(i) != curriculum.StatusLocked {
			nameStyle = nameStyle.Foreground(theme.Primary)
		}
	}

	title := nameStyle.Render(fmt.Sprintf("Unit %d  %s", u.ID, u.Title))
	topic := theme.Hint.Render(u.Topic)
	line := fmt.Sprintf("%s%s  %s  %s", prefix, icon, title, topic)

	if selected && u.Description != "" {
		line += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).PaddingLeft(7).
			Width(min(width-4, 72)).Render(u.Description)
	}
	return line
}
