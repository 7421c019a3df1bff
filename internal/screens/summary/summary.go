package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/session"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

// SummaryScreen displays the result of a finished practice session.
type SummaryScreen struct {
	summary session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Practice Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Back to the mode menu, which refreshes its checkmarks.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(st lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, st.Render(text))
	}

	var b strings.Builder
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "🎉 Well done!"))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Body,
		fmt.Sprintf("You finished %s practice for %s", sum.Mode.DisplayName(), sum.UnitTitle)))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(layout.Divider(width), width))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true),
		fmt.Sprintf("✦ +%d XP", sum.XPEarned)))
	b.WriteString("\n\n")

	stats := []string{fmt.Sprintf("Steps: %d", sum.Steps)}
	if sum.Graded > 0 {
		stats = append(stats,
			fmt.Sprintf("Correct: %d/%d", sum.Correct, sum.Graded),
			fmt.Sprintf("Accuracy: %.0f%%", sum.Accuracy*100))
	}
	stats = append(stats, "Time: "+formatDuration(sum))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), strings.Join(stats, "        ")))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Hint, encouragement(sum)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func formatDuration(sum session.Summary) string {
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func encouragement(sum session.Summary) string {
	switch {
	case sum.Graded == 0:
		return "Keep going, every word counts!"
	case sum.Accuracy >= 0.8:
		return "Amazing work! You're a star."
	case sum.Accuracy >= 0.5:
		return "Good job! A little more practice and you'll nail it."
	}
	return "Don't give up. Try this practice again!"
}
