package progress

import "time"

const dayLayout = "2006-01-02"

// touchStreak records activity on day now. The streak grows on the first
// activity of a day that follows an active day and restarts at 1 after a
// gap. Repeated activity on the same day changes nothing.
func touchStreak(u *UserProgress, now time.Time) {
	today := now.Format(dayLayout)
	if u.LastActive == today {
		return
	}

	yesterday := now.AddDate(0, 0, -1).Format(dayLayout)
	if u.LastActive == yesterday && u.Streak > 0 {
		u.Streak++
	} else {
		u.Streak = 1
	}
	u.LastActive = today
}

// CurrentStreak is the streak as of now: a streak whose last active day
// is older than yesterday has lapsed and shows as zero.
func CurrentStreak(u UserProgress, now time.Time) int {
	switch u.LastActive {
	case now.Format(dayLayout), now.AddDate(0, 0, -1).Format(dayLayout):
		return u.Streak
	}
	return 0
}
