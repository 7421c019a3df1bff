package history

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
)

func newTestHistory(t *testing.T) (*HistoryScreen, store.EventRepo) {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	ledger := progress.NewLedger(st.KVRepo(), st.EventRepo())
	env := &screen.Env{Ledger: ledger, EventRepo: st.EventRepo()}
	return New(env), st.EventRepo()
}

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func TestHistory_Empty(t *testing.T) {
	s, _ := newTestHistory(t)
	load(s)
	if !strings.Contains(s.View(100, 30), "No practice yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistory_ListsFinishedSessions(t *testing.T) {
	s, repo := newTestHistory(t)
	ctx := context.Background()

	for _, ev := range []store.SessionEventData{
		{SessionID: "a", UnitID: 1, Mode: "vocab", Action: "start"},
		{SessionID: "a", UnitID: 1, Mode: "vocab", Action: "complete", XPEarned: 50, DurationSecs: 65},
		{SessionID: "b", UnitID: 2, Mode: "listening", Action: "start"},
		{SessionID: "b", UnitID: 2, Mode: "listening", Action: "exit"},
	} {
		if err := repo.AppendSessionEvent(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendScoreEvent(ctx, store.ScoreEventData{
		StudentID: "guest", SessionID: "a", UnitID: 1, Mode: "vocab", Reason: "completion-bonus", Points: 50,
	}); err != nil {
		t.Fatalf("append score: %v", err)
	}

	load(s)
	if len(s.sessions) != 2 {
		t.Fatalf("sessions = %d, want 2 (start events hidden)", len(s.sessions))
	}
	if s.sessions[0].SessionID != "b" {
		t.Errorf("newest session first, got %q", s.sessions[0].SessionID)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(120, 30)
	if !strings.Contains(view, "completion-bonus") {
		t.Errorf("expanded session should list its awards:\n%s", view)
	}
	if !strings.Contains(view, "Unit 1") || !strings.Contains(view, "1:05") {
		t.Errorf("row should show the unit and duration:\n%s", view)
	}
}

func TestHistory_EscPops(t *testing.T) {
	s, _ := newTestHistory(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
