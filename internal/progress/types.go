package progress

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
)

// XPPerLevel is the XP needed for each level.
const XPPerLevel = 500

// Level returns the level for a cumulative XP total. There is no cap.
func Level(xp int) int {
	return xp/XPPerLevel + 1
}

// LevelProgress returns how far xp is into its current level, in [0, 1).
func LevelProgress(xp int) float64 {
	return float64(xp%XPPerLevel) / XPPerLevel
}

// Profile identifies a learner. StudentID is the identity key.
type Profile struct {
	Name      string `json:"name"`
	ClassID   string `json:"classId"`
	StudentID string `json:"studentId"`
}

// UserProgress is the persisted learner record.
type UserProgress struct {
	Profile        Profile          `json:"profile"`
	XP             int              `json:"xp"`
	Level          int              `json:"level"`
	Streak         int              `json:"streak"`
	LastActive     string           `json:"lastActive,omitempty"` // YYYY-MM-DD, local time
	CompletedUnits []int            `json:"completedUnits"`
	CompletedModes map[int][]string `json:"completedModes,omitempty"`
	Badges         []string         `json:"badges"`
}

// DefaultUser is the record a fresh login starts from.
func DefaultUser() UserProgress {
	return UserProgress{
		Profile:        Profile{Name: "Student", ClassID: "9A", StudentID: "guest"},
		Level:          1,
		CompletedUnits: []int{},
		Badges:         []string{},
	}
}

// Clone returns a deep copy.
func (u UserProgress) Clone() UserProgress {
	out := u
	out.CompletedUnits = slices.Clone(u.CompletedUnits)
	out.Badges = slices.Clone(u.Badges)
	if u.CompletedModes != nil {
		out.CompletedModes = make(map[int][]string, len(u.CompletedModes))
		for k, v := range u.CompletedModes {
			out.CompletedModes[k] = slices.Clone(v)
		}
	}
	return out
}

// HasCompletedUnit reports whether unit id is completed.
func (u UserProgress) HasCompletedUnit(id int) bool {
	return slices.Contains(u.CompletedUnits, id)
}

// HasCompletedMode reports whether the mode was finished at least once in unit id.
func (u UserProgress) HasCompletedMode(id int, m curriculum.Mode) bool {
	return slices.Contains(u.CompletedModes[id], string(m))
}

// Award is one XP grant.
type Award struct {
	Points    int
	Reason    string
	UnitID    int
	Mode      curriculum.Mode
	SessionID string
}

// ScoreResult reports the effect of an award.
type ScoreResult struct {
	XP        int
	Level     int
	LeveledUp bool
	NewBadges []string
}

// ValidationError lists the profile fields missing at login.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill in: %s", strings.Join(e.Missing, ", "))
}
