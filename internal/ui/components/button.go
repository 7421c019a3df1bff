package components

import (
	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

// Button is a styled, focusable button.
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.Text).
			Bold(true).
			Padding(0, 2).
			Render("▸ " + b.Label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(b.Label)
}
