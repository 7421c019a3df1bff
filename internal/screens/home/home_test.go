package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "login" }
func (s *stubScreen) Title() string                           { return "Login" }

func newTestHome(t *testing.T) (*HomeScreen, *screen.Env) {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	catalog, err := curriculum.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	env := &screen.Env{
		Catalog:   catalog,
		Ledger:    progress.NewLedger(st.KVRepo(), st.EventRepo()),
		EventRepo: st.EventRepo(),
	}
	if err := env.Ledger.Login(context.Background(), progress.Profile{Name: "Lan", ClassID: "9A", StudentID: "hs-1"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	return New(env, func() screen.Screen { return &stubScreen{} }), env
}

func itemLabels(h *HomeScreen) []string {
	var labels []string
	for _, it := range h.menu.Items {
		labels = append(labels, it.Label)
	}
	return labels
}

func TestHome_MenuStartsWithContinue(t *testing.T) {
	h, env := newTestHome(t)

	labels := itemLabels(h)
	if labels[0] != "CONTINUE" {
		t.Fatalf("first item = %q, want CONTINUE", labels[0])
	}
	first := env.Catalog.Units()[0]
	if !strings.Contains(h.menu.Items[0].Detail, first.Title) {
		t.Errorf("continue detail = %q, want first unit", h.menu.Items[0].Detail)
	}
}

func TestHome_GreetsLearner(t *testing.T) {
	h, _ := newTestHome(t)
	if !strings.Contains(h.View(100, 40), "Lan") {
		t.Error("dashboard should greet the learner by name")
	}
}

func TestHome_RefreshPicksUpXP(t *testing.T) {
	h, env := newTestHome(t)
	if _, err := env.Ledger.RecordScore(context.Background(), progress.Award{Points: 30, Reason: "test"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	h.Refresh()
	if h.user.XP != 30 {
		t.Errorf("XP = %d, want 30", h.user.XP)
	}
}

func TestHome_LogoutResetsStack(t *testing.T) {
	h, env := newTestHome(t)

	var cmd tea.Cmd
	for i, label := range itemLabels(h) {
		if label == "LOG OUT" {
			h.menu.Selected = i
			_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		}
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ResetScreenMsg)
	if !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*stubScreen); !ok {
		t.Errorf("expected the login screen, got %T", msg.Screen)
	}
	if !env.Ledger.LoggedIn() {
		t.Error("logging out should keep the stored record")
	}
}
