package units

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/practice"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
)

func newTestEnv(t *testing.T) *screen.Env {
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
	return &screen.Env{
		Catalog: catalog,
		Ledger:  progress.NewLedger(st.KVRepo(), st.EventRepo()),
	}
}

func TestCourseMap_LockedUnitShowsNotice(t *testing.T) {
	env := newTestEnv(t)
	if len(env.Catalog.Units()) < 2 {
		t.Skip("catalog needs two units")
	}
	s := New(env)
	if s.cursor != 0 {
		t.Fatalf("cursor = %d, want first unit", s.cursor)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("a locked unit should not open")
	}
	first := env.Catalog.Units()[0]
	if !strings.Contains(s.notice, first.Title) {
		t.Errorf("notice = %q, want it to name %q", s.notice, first.Title)
	}
}

func TestCourseMap_OpenUnitPushesModeMenu(t *testing.T) {
	s := New(newTestEnv(t))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*ModeMenuScreen); !ok {
		t.Errorf("expected mode menu, got %T", push.Screen)
	}
}

func TestModeMenu_ListsOfferedModes(t *testing.T) {
	env := newTestEnv(t)
	unit := &env.Catalog.Units()[0]
	m := NewModeMenu(env, unit)

	if got, want := len(m.menu.Items), len(unit.Modes()); got != want {
		t.Fatalf("items = %d, want %d", got, want)
	}
	for i, mode := range unit.Modes() {
		if m.menu.Items[i].Label != mode.DisplayName() {
			t.Errorf("item %d = %q, want %q", i, m.menu.Items[i].Label, mode.DisplayName())
		}
	}
}

func TestModeMenu_StartPushesPractice(t *testing.T) {
	env := newTestEnv(t)
	m := NewModeMenu(env, &env.Catalog.Units()[0])

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	p, ok := push.Screen.(*practice.PracticeScreen)
	if !ok {
		t.Fatalf("expected practice screen, got %T", push.Screen)
	}
	p.Close()
}
