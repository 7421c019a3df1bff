package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		SessionID: "s-1",
		UnitID:    1,
		UnitTitle: "My School",
		Mode:      curriculum.ModeListening,
		Completed: true,
		XPEarned:  80,
		Steps:     1,
		Graded:    4,
		Correct:   3,
		Accuracy:  0.75,
		Duration:  2*time.Minute + 5*time.Second,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Practice Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary()).View(80, 24)
	for _, want := range []string{"+80 XP", "Correct: 3/4", "Accuracy: 75%", "2:05", "My School"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_UngradedHidesAccuracy(t *testing.T) {
	sum := testSummary()
	sum.Mode = curriculum.ModeVocab
	sum.Graded, sum.Correct, sum.Accuracy = 0, 0, 0

	view := New(sum).View(80, 24)
	if strings.Contains(view, "Accuracy") {
		t.Error("vocab summary should not show accuracy")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		s := New(testSummary())
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected a command", key.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("%s: expected PopScreenMsg", key.String())
		}
	}
}
