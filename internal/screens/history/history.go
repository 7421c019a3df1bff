package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionEventRecord
	Scores   map[string][]store.ScoreEventRecord // sessionID → awards
	Err      error
}

// HistoryScreen lists finished practice sessions and the XP awarded in each.
type HistoryScreen struct {
	env      *screen.Env
	sessions []store.SessionEventRecord
	scores   map[string][]store.ScoreEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. env.EventRepo must be set.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.env.EventRepo
	studentID := s.env.Ledger.Snapshot().Profile.StudentID
	return func() tea.Msg {
		ctx := context.Background()

		events, err := repo.QuerySessionEvents(ctx, store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		sessions := finished(events)

		scores, err := repo.QueryScoreEvents(ctx, studentID, store.QueryOpts{})
		if err != nil {
			// Awards are only shown as details.
			return historyLoadedMsg{Sessions: sessions, Scores: map[string][]store.ScoreEventRecord{}}
		}
		bySession := make(map[string][]store.ScoreEventRecord)
		for _, sc := range scores {
			bySession[sc.SessionID] = append(bySession[sc.SessionID], sc)
		}
		return historyLoadedMsg{Sessions: sessions, Scores: bySession}
	}
}

// finished keeps the completed and abandoned sessions, at most historyLimit.
func finished(events []store.SessionEventRecord) []store.SessionEventRecord {
	var out []store.SessionEventRecord
	for _, e := range events {
		if e.Action != "complete" && e.Action != "exit" {
			continue
		}
		out = append(out, e)
		if len(out) == historyLimit {
			break
		}
	}
	return out
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.scores = msg.Scores
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No practice yet. Pick a unit to start!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		status := "✓"
		if sess.Action == "exit" {
			status = "·"
		}
		line := fmt.Sprintf("%s%s %s  %-22s %-14s %4d XP  %d:%02d",
			prefix, status,
			sess.Timestamp.Local().Format("Jan 02 15:04"),
			s.unitTitle(sess.UnitID),
			modeName(sess.Mode),
			sess.XPEarned,
			sess.DurationSecs/60, sess.DurationSecs%60)
		if sess.Questions > 0 {
			line += fmt.Sprintf("  %d/%d", sess.CorrectAnswers, sess.Questions)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.selected:
			style = style.Foreground(theme.Primary).Bold(true)
		case sess.Action == "exit":
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAwards(sess.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAwards(sessionID string, width int) string {
	awards := s.scores[sessionID]
	if len(awards) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No XP this session")) + "\n"
	}
	var b strings.Builder
	for _, a := range awards {
		line := fmt.Sprintf("    +%d XP  %s", a.Points, a.Reason)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Gold).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) unitTitle(id int) string {
	if s.env.Catalog != nil {
		if u, err := s.env.Catalog.Unit(id); err == nil {
			return u.Title
		}
	}
	return fmt.Sprintf("Unit %d", id)
}

func modeName(mode string) string {
	if m, ok := curriculum.ParseMode(mode); ok {
		return m.DisplayName()
	}
	return mode
}
