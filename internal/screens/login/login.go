package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/components"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

const (
	fieldName = iota
	fieldClass
	fieldStudentID
	focusButton
)

// LoginScreen collects the learner profile. No password is asked for; the
// profile only labels the local progress record.
type LoginScreen struct {
	ledger *progress.Ledger
	next   func() screen.Screen

	inputs []components.TextInput
	button components.Button
	focus  int
	errMsg string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen that replaces itself with next() once the
// profile is saved.
func New(ledger *progress.Ledger, next func() screen.Screen) *LoginScreen {
	inputs := []components.TextInput{
		components.NewTextInput("Full name", "Nguyen Van A", 40),
		components.NewTextInput("Class", "9A", 10),
		components.NewTextInput("Student ID", "hs001", 20),
	}
	return &LoginScreen{
		ledger: ledger,
		next:   next,
		inputs: inputs,
		button: components.NewButton("Start learning"),
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.setFocus(fieldName)
}

func (l *LoginScreen) Title() string {
	return "Welcome"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LoginScreen) setFocus(i int) tea.Cmd {
	l.focus = i
	l.button.Focused = i == focusButton
	var cmd tea.Cmd
	for j := range l.inputs {
		if j == i {
			cmd = l.inputs[j].Focus()
		} else {
			l.inputs[j].Blur()
		}
	}
	return cmd
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return l, l.setFocus((l.focus + 1) % (focusButton + 1))
		case "shift+tab", "up":
			return l, l.setFocus((l.focus + focusButton) % (focusButton + 1))
		case "enter":
			if l.focus < fieldStudentID {
				return l, l.setFocus(l.focus + 1)
			}
			return l, l.submit()
		}
	}

	if l.focus < focusButton {
		var cmd tea.Cmd
		l.inputs[l.focus], cmd = l.inputs[l.focus].Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LoginScreen) submit() tea.Cmd {
	p := progress.Profile{
		Name:      l.inputs[fieldName].Value(),
		ClassID:   l.inputs[fieldClass].Value(),
		StudentID: l.inputs[fieldStudentID].Value(),
	}
	if err := l.ledger.Login(context.Background(), p); err != nil {
		var verr *progress.ValidationError
		if errors.As(err, &verr) {
			l.errMsg = "Please fill in: " + strings.Join(verr.Missing, ", ")
		} else {
			l.errMsg = "Could not save your profile: " + err.Error()
		}
		return nil
	}
	l.errMsg = ""
	next := l.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (l *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Welcome to EnglishMaster"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Tell us who you are to save your progress."))
	b.WriteString("\n\n")

	for _, in := range l.inputs {
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(l.button.View())

	if l.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(l.errMsg))
	}

	return components.Frame(components.Panel(b.String(), cw, theme.Primary), width, height)
}
