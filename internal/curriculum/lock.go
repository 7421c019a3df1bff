package curriculum

import "slices"

// IsLocked reports whether the unit at course position i is locked.
// The first unit is always open. Any other unit opens once its predecessor
// is completed, and stays open once it is completed itself.
func IsLocked(units []Unit, i int, completed []int) bool {
	if i <= 0 {
		return false
	}
	if i >= len(units) {
		return true
	}
	if slices.Contains(completed, units[i].ID) {
		return false
	}
	return !slices.Contains(completed, units[i-1].ID)
}

// UnitStatus is how the course map shows a unit.
type UnitStatus int

const (
	StatusLocked UnitStatus = iota
	StatusOpen
	StatusCompleted
)

// Status combines the lock predicate with completion for display.
func Status(units []Unit, i int, completed []int) UnitStatus {
	if i >= 0 && i < len(units) && slices.Contains(completed, units[i].ID) {
		return StatusCompleted
	}
	if IsLocked(units, i, completed) {
		return StatusLocked
	}
	return StatusOpen
}
