// Package leaderboard ranks the learner among their classmates.
package leaderboard

import (
	"cmp"
	"slices"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
)

// Entry is one ranked row.
type Entry struct {
	Rank      int
	StudentID string
	Name      string
	ClassID   string
	XP        int
	Current   bool
}

// Rank merges the current learner into the roster, keeps one row per
// student ID (the learner's live record replaces a roster row with the
// same ID) and orders rows by XP, highest first. Ties keep name order.
// Ranks are 1-based positions.
func Rank(roster []curriculum.Classmate, current progress.UserProgress) []Entry {
	me := current.Profile.StudentID

	entries := make([]Entry, 0, len(roster)+1)
	seen := make(map[string]bool, len(roster)+1)
	for _, c := range roster {
		if c.StudentID == me || seen[c.StudentID] {
			continue
		}
		seen[c.StudentID] = true
		entries = append(entries, Entry{StudentID: c.StudentID, Name: c.Name, ClassID: c.ClassID, XP: c.XP})
	}
	entries = append(entries, Entry{
		StudentID: me,
		Name:      current.Profile.Name,
		ClassID:   current.Profile.ClassID,
		XP:        current.XP,
		Current:   true,
	})

	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.XP, a.XP); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Position returns the current learner's entry.
func Position(entries []Entry) (Entry, bool) {
	for _, e := range entries {
		if e.Current {
			return e, true
		}
	}
	return Entry{}, false
}
