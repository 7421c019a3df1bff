package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/router"
	"github.com/lotushuong244-bit/englishmaster/internal/screen"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/history"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/leaderboard"
	"github.com/lotushuong244-bit/englishmaster/internal/screens/units"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/components"
	"github.com/lotushuong244-bit/englishmaster/internal/ui/layout"
)

// HomeScreen is the learner dashboard.
type HomeScreen struct {
	env    *screen.Env
	logout func() screen.Screen
	now    func() time.Time

	menu   components.Menu
	user   progress.UserProgress
	streak int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. logout builds the screen shown after the
// learner logs out.
func New(env *screen.Env, logout func() screen.Screen) *HomeScreen {
	h := &HomeScreen{env: env, logout: logout, now: time.Now}
	h.reload()
	return h
}

// reload re-reads the learner record and rebuilds the menu.
func (h *HomeScreen) reload() {
	h.user = h.env.Ledger.Snapshot()
	h.streak = progress.CurrentStreak(h.user, h.now())

	var items []components.MenuItem
	if u := nextUnit(h.env.Catalog.Units(), h.user.CompletedUnits); u != nil {
		items = append(items, components.MenuItem{
			Label:  "CONTINUE",
			Detail: fmt.Sprintf("Unit %d · %s", u.ID, u.Title),
			Action: func() tea.Cmd {
				return push(units.NewModeMenu(h.env, u))
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "COURSE MAP", Action: func() tea.Cmd {
			return push(units.New(h.env))
		}},
		components.MenuItem{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return push(leaderboard.New(h.env))
		}},
		components.MenuItem{Label: "HISTORY", Disabled: h.env.EventRepo == nil, Action: func() tea.Cmd {
			return push(history.New(h.env))
		}},
		components.MenuItem{Label: "LOG OUT", Action: h.doLogout},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	)

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

// nextUnit returns the first unlocked unit that is not completed.
func nextUnit(all []curriculum.Unit, completed []int) *curriculum.Unit {
	for i := range all {
		if curriculum.Status(all, i, completed) == curriculum.StatusOpen {
			return &all[i]
		}
	}
	return nil
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// doLogout returns to the login screen. The stored record is kept until a
// new profile is saved.
func (h *HomeScreen) doLogout() tea.Cmd {
	next := h.logout()
	return func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Refresh reloads progress after returning from practice.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.reload()
	return nil
}

func (h *HomeScreen) Title() string {
	return "Dashboard"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back the header and footer.
	compact := height+6 < 32 || width < 100
	cw := components.ContentWidth(width)

	var sections []string
	if !compact {
		sections = append(sections, centered(RenderMascot(mascotFor(h.streak, h.user.XP)), cw))
	}
	sections = append(sections,
		renderGreeting(h.user.Profile, cw),
		renderStats(h.user, h.streak, cw, compact),
		renderMenu(h.menu, cw),
	)
	if h.env.Oracle == nil {
		sections = append(sections, renderOfflineNote(cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}
