package session

import (
	"time"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
)

// Summary holds the data displayed on the completion screen.
type Summary struct {
	SessionID string
	UnitID    int
	UnitTitle string
	Mode      curriculum.Mode
	Completed bool
	XPEarned  int
	Steps     int

	// Graded counts quiz questions and scored recordings; Correct counts
	// the right answers and recordings rated Good or better.
	Graded   int
	Correct  int
	Accuracy float64

	Duration time.Duration
}

// Summary builds the completion summary from the current state.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := s.endedAt
	if end.IsZero() {
		end = s.deps.Now()
	}

	var accuracy float64
	if s.evaluated > 0 {
		accuracy = float64(s.passed) / float64(s.evaluated)
	}

	return Summary{
		SessionID: s.id,
		UnitID:    s.unit.ID,
		UnitTitle: s.unit.Title,
		Mode:      s.mode,
		Completed: s.phase == PhaseCompleted,
		XPEarned:  s.xpEarned,
		Steps:     s.count,
		Graded:    s.evaluated,
		Correct:   s.passed,
		Accuracy:  accuracy,
		Duration:  end.Sub(s.startedAt),
	}
}
