package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked panels so
// they line up.
func ContentWidth(frameWidth int) int {
	// Leave room for the frame border (2) and padding (4).
	return min(max(frameWidth-6, 20), 64)
}

// Frame wraps content in a double border, centered in the given area.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel wraps content in a rounded border of the given accent color.
func Panel(content string, cw int, accent color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(cw - 2).
		Padding(0, 2).
		Render(content)
}
