package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

// ChoiceMark is the grading highlight of one option.
type ChoiceMark int

const (
	ChoiceUnmarked ChoiceMark = iota
	ChoiceCorrect
	ChoiceWrong
)

// ChoiceList renders one multiple-choice question. Chosen is the selected
// option or -1; Marks is set once the answers are graded.
type ChoiceList struct {
	Number  int
	Prompt  string
	Options []string
	Chosen  int
	Marks   []ChoiceMark
	Focused bool
}

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// View renders the question and its options.
func (c ChoiceList) View() string {
	var b strings.Builder

	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if c.Focused {
		promptStyle = promptStyle.Foreground(theme.Primary)
	}
	b.WriteString(promptStyle.Render(fmt.Sprintf("%d. %s", c.Number, c.Prompt)))
	b.WriteString("\n")

	for i, opt := range c.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		bullet := "○"
		if i == c.Chosen {
			bullet = "●"
		}
		line := fmt.Sprintf("   %s %s) %s", bullet, label, opt)

		style := theme.Unselected
		switch {
		case i < len(c.Marks) && c.Marks[i] == ChoiceCorrect:
			style = theme.Correct
			line += "  ✓"
		case i < len(c.Marks) && c.Marks[i] == ChoiceWrong:
			style = theme.Incorrect
			line += "  ✗"
		case len(c.Marks) > 0:
			style = theme.Locked
		case i == c.Chosen:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
