package home

import (
	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default
	MascotCelebrating                      // Badge earned or streak going
	MascotSleepy                           // Streak lapsed
)

const mascotIdle = ` ╭─────╮
 │ ◉ ◉ │
 │  ◡  │
 ╰┬───┬╯
  │ABC│`

const mascotCelebrating = `\╭─────╮/
 │ ★ ★ │
 │  ▽  │
 ╰┬───┬╯
  │ABC│`

const mascotSleepy = ` ╭─────╮ z
 │ - - │z
 │  ○  │
 ╰┬───┬╯
  │ABC│`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.Gold
	case MascotSleepy:
		art, fg = mascotSleepy, theme.TextDim
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}

// mascotFor picks the mascot mood from the learner's streak and XP.
func mascotFor(streak, xp int) MascotVariant {
	switch {
	case streak >= 2:
		return MascotCelebrating
	case streak == 0 && xp > 0:
		return MascotSleepy
	}
	return MascotIdle
}
