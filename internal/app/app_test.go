package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/home"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/login"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
)

type captureScreen struct{ capturing bool }

func (s *captureScreen) Init() tea.Cmd                           { return nil }
func (s *captureScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *captureScreen) View(int, int) string                    { return "" }
func (s *captureScreen) Title() string                           { return "Capture" }
func (s *captureScreen) CapturingInput() bool                    { return s.capturing }

func testOptions(t *testing.T) Options {
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
	return Options{
		Catalog:   catalog,
		Ledger:    progress.NewLedger(st.KVRepo(), st.EventRepo()),
		EventRepo: st.EventRepo(),
	}
}

// skipWelcome presses a key on the welcome screen and applies the
// resulting navigation.
func skipWelcome(t *testing.T, m AppModel) screen.Screen {
	t.Helper()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("welcome should navigate on a key press")
	}
	m.Update(cmd())
	return m.router.Active()
}

func TestNewAppModel_NewLearnerLogsIn(t *testing.T) {
	m := newAppModel(testOptions(t))
	if _, ok := skipWelcome(t, m).(*login.LoginScreen); !ok {
		t.Errorf("expected login screen, got %T", m.router.Active())
	}
	if got := m.stats(); got.Level != 0 {
		t.Errorf("stats should be hidden before login, got %+v", got)
	}
}

func TestNewAppModel_ReturningLearnerGoesHome(t *testing.T) {
	opts := testOptions(t)
	if err := opts.Ledger.Login(context.Background(), progress.Profile{Name: "Lan", ClassID: "9A", StudentID: "hs-9"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	m := newAppModel(opts)
	if _, ok := skipWelcome(t, m).(*home.HomeScreen); !ok {
		t.Errorf("expected home screen, got %T", m.router.Active())
	}
	if got := m.stats(); got.Level != 1 {
		t.Errorf("Level = %d, want 1", got.Level)
	}
}

func TestUpdate_EscRespectsInputCapture(t *testing.T) {
	m := newAppModel(testOptions(t))
	cs := &captureScreen{capturing: true}
	m.router.Push(cs)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("esc should stay with a capturing screen")
		}
	}

	cs.capturing = false
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop when input is not captured")
	}
}
