package leaderboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ranking "github.com/lotushuong244-bit/englishmaster/internal/leaderboard"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

var medals = []string{"🥇", "🥈", "🥉"}

// LeaderboardScreen ranks the learner against the class roster.
type LeaderboardScreen struct {
	env          *screen.Env
	entries      []ranking.Entry
	me           ranking.Entry
	scrollOffset int
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a new LeaderboardScreen.
func New(env *screen.Env) *LeaderboardScreen {
	s := &LeaderboardScreen{env: env}
	s.entries = ranking.Rank(env.Catalog.Classmates(), env.Ledger.Snapshot())
	s.me, _ = ranking.Position(s.entries)
	return s
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return nil
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.entries)-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Gold).Bold(true).
		Render(fmt.Sprintf("\nYou are #%d of %d with %d XP\n", s.me.Rank, len(s.entries), s.me.XP)))
	b.WriteString("\n")
	b.WriteString(layout.Centered(layout.Divider(width), width))
	b.WriteString("\n\n")

	// Header (3) + summary lines take the top of the area.
	visible := max(height-8, 3)
	end := min(s.scrollOffset+visible, len(s.entries))
	for _, e := range s.entries[s.scrollOffset:end] {
		b.WriteString(layout.Centered(renderRow(e), width))
		b.WriteString("\n")
	}

	if end < len(s.entries) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(s.entries)-end)))
	}
	return b.String()
}

func renderRow(e ranking.Entry) string {
	rank := fmt.Sprintf("%3d", e.Rank)
	if e.Rank <= len(medals) {
		rank = " " + medals[e.Rank-1]
	}
	name := e.Name
	if e.Current {
		name += " (you)"
	}
	line := fmt.Sprintf("%s  %-24s %-6s %6d XP", rank, name, e.ClassID, e.XP)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case e.Current:
		style = style.Foreground(theme.Primary).Bold(true)
	case e.Rank <= len(medals):
		style = style.Foreground(theme.Gold)
	}
	return style.Render(line)
}
