package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/components"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

// renderGreeting renders the learner's name and class.
func renderGreeting(p progress.Profile, cw int) string {
	hello := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Hi, %s!", p.Name))
	sub := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Class %s · ID %s", p.ClassID, p.StudentID))
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(hello + "\n" + sub)
}

// renderStats renders XP, level progress, streak and badges in a box
// matching the content width.
func renderStats(u progress.UserProgress, streak, cw int, compact bool) string {
	xpStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	lvlStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	line := fmt.Sprintf("%s   %s   %s",
		xpStyle.Render(fmt.Sprintf("✦ %d XP", u.XP)),
		lvlStyle.Render(fmt.Sprintf("LEVEL %d", u.Level)),
		streakStyle.Render(fmt.Sprintf("🔥 %d DAY STREAK", streak)),
	)

	toNext := progress.XPPerLevel - u.XP%progress.XPPerLevel
	bar := components.NewProgressBar("", progress.LevelProgress(u.XP), true, cw-8)
	bar.Fill = theme.Gold
	lines := []string{
		line,
		bar.View(),
		theme.Hint.Render(fmt.Sprintf("%d XP to level %d", toNext, u.Level+1)),
	}

	if !compact {
		lines = append(lines, "", renderBadges(u.Badges))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Sky).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func renderBadges(badges []string) string {
	if len(badges) == 0 {
		return theme.Hint.Render("No badges yet. Finish a practice to earn one!")
	}
	labels := make([]string, 0, len(badges))
	for _, b := range badges {
		labels = append(labels, "🏅 "+progress.BadgeLabel(b))
	}
	return lipgloss.NewStyle().Foreground(theme.Gold).Render(strings.Join(labels, "  "))
}

// renderMenu renders the menu centered at the content width.
func renderMenu(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Align(lipgloss.Left).Render(m.View()))
}

// renderOfflineNote warns when the AI judge is not configured.
func renderOfflineNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ AI feedback is off. Set GEMINI_API_KEY to enable it (see englishmaster --help)")
}

func centered(s string, cw int) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}
