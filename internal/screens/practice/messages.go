package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	sess "github.com/lotushuong244-bit/englishmaster/internal/session"
)

// outcomeMsg carries a finished session task back to the update loop.
type outcomeMsg struct {
	Outcome sess.Outcome
}

// runTask runs t off the update loop under the session context.
func runTask(ctx context.Context, t *sess.Task) tea.Cmd {
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		return outcomeMsg{Outcome: t.Run(ctx)}
	}
}
