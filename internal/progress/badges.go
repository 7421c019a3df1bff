package progress

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// BadgeFirstSteps is earned with the first award.
const BadgeFirstSteps = "first-steps"

func levelBadge(level int) string { return fmt.Sprintf("level-%d", level) }

func unitBadge(unitID int) string { return fmt.Sprintf("unit-%d", unitID) }

// BadgeLabel renders a badge id for display.
func BadgeLabel(badge string) string {
	switch {
	case badge == BadgeFirstSteps:
		return "First Steps"
	case strings.HasPrefix(badge, "level-"):
		if n, err := strconv.Atoi(strings.TrimPrefix(badge, "level-")); err == nil {
			return fmt.Sprintf("Level %d", n)
		}
	case strings.HasPrefix(badge, "unit-"):
		if n, err := strconv.Atoi(strings.TrimPrefix(badge, "unit-")); err == nil {
			return fmt.Sprintf("Unit %d Master", n)
		}
	}
	return badge
}

// addBadge appends badge if missing and reports whether it was new.
func addBadge(u *UserProgress, badge string) bool {
	if slices.Contains(u.Badges, badge) {
		return false
	}
	u.Badges = append(u.Badges, badge)
	return true
}

// levelBadges adds a badge for every level reached in (from, to].
func levelBadges(u *UserProgress, from, to int) []string {
	var added []string
	for lvl := max(from+1, 2); lvl <= to; lvl++ {
		if b := levelBadge(lvl); addBadge(u, b) {
			added = append(added, b)
		}
	}
	return added
}
