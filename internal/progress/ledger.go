// Package progress keeps the learner's XP, level, streak, badges and
// completed units, persisted as one record in the key-value store.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/store"
)

// RecordKey is the key-value key of the learner record.
const RecordKey = "englishMasterUser"

// ErrNegativePoints is returned for awards below zero.
var ErrNegativePoints = errors.New("award points must not be negative")

// Ledger owns the learner record. Every mutation is persisted before it
// becomes visible. It is safe for concurrent use.
type Ledger struct {
	kv     store.KVRepo
	events store.EventRepo
	now    func() time.Time
	logger *slog.Logger

	mu       sync.Mutex
	user     UserProgress
	loggedIn bool
}

// NewLedger creates a ledger over the given repos. events may be nil.
func NewLedger(kv store.KVRepo, events store.EventRepo) *Ledger {
	return &Ledger{
		kv:     kv,
		events: events,
		now:    time.Now,
		logger: slog.Default().With("component", "progress"),
		user:   DefaultUser(),
	}
}

// Load reads the stored record. It reports whether one was found; without
// one the learner has to log in.
func (l *Ledger) Load(ctx context.Context) (bool, error) {
	raw, ok, err := l.kv.Get(ctx, RecordKey)
	if err != nil {
		return false, fmt.Errorf("load progress: %w", err)
	}
	if !ok {
		return false, nil
	}

	user := DefaultUser()
	if err := json.Unmarshal(raw, &user); err != nil {
		return false, fmt.Errorf("decode progress: %w", err)
	}
	// Level is derived; a hand-edited record cannot disagree with XP.
	user.Level = Level(user.XP)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.user = user
	l.loggedIn = true
	return true, nil
}

// LoggedIn reports whether a learner record is active.
func (l *Ledger) LoggedIn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loggedIn
}

// Snapshot returns a copy of the current record.
func (l *Ledger) Snapshot() UserProgress {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.user.Clone()
}

// Login validates the profile and starts a fresh record for it.
func (l *Ledger) Login(ctx context.Context, p Profile) error {
	p = Profile{
		Name:      strings.TrimSpace(p.Name),
		ClassID:   strings.TrimSpace(p.ClassID),
		StudentID: strings.TrimSpace(p.StudentID),
	}

	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.ClassID == "" {
		missing = append(missing, "class")
	}
	if p.StudentID == "" {
		missing = append(missing, "student ID")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	user := DefaultUser()
	user.Profile = p

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.persist(ctx, user); err != nil {
		return err
	}
	l.user = user
	l.loggedIn = true
	l.logger.Info("learner logged in", "student_id", p.StudentID, "class", p.ClassID)
	return nil
}

// RecordScore adds an award to the learner's XP and recomputes the level,
// streak and badges.
func (l *Ledger) RecordScore(ctx context.Context, a Award) (ScoreResult, error) {
	if a.Points < 0 {
		return ScoreResult{}, fmt.Errorf("%w: %d", ErrNegativePoints, a.Points)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	user := l.user.Clone()
	prevLevel := user.Level
	user.XP += a.Points
	user.Level = Level(user.XP)
	touchStreak(&user, l.now())

	var badges []string
	if addBadge(&user, BadgeFirstSteps) {
		badges = append(badges, BadgeFirstSteps)
	}
	badges = append(badges, levelBadges(&user, prevLevel, user.Level)...)

	if err := l.persist(ctx, user); err != nil {
		return ScoreResult{}, err
	}
	l.user = user

	l.appendScoreEvent(ctx, a, user)
	l.logger.Debug("score recorded", "points", a.Points, "reason", a.Reason, "xp", user.XP, "level", user.Level)

	return ScoreResult{
		XP:        user.XP,
		Level:     user.Level,
		LeveledUp: user.Level > prevLevel,
		NewBadges: badges,
	}, nil
}

// CompleteMode marks a mode finished in unit. When every mode the unit
// offers has been finished the unit is completed, which unlocks the next
// one. It reports whether this call completed the unit.
func (l *Ledger) CompleteMode(ctx context.Context, unit *curriculum.Unit, mode curriculum.Mode) (bool, error) {
	if !unit.Offers(mode) {
		return false, fmt.Errorf("unit %d has no %s practice", unit.ID, mode)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	user := l.user.Clone()
	if user.CompletedModes == nil {
		user.CompletedModes = make(map[int][]string)
	}
	if !slices.Contains(user.CompletedModes[unit.ID], string(mode)) {
		user.CompletedModes[unit.ID] = append(user.CompletedModes[unit.ID], string(mode))
	}

	unitDone := false
	if !user.HasCompletedUnit(unit.ID) && allModesDone(user, unit) {
		user.CompletedUnits = append(user.CompletedUnits, unit.ID)
		addBadge(&user, unitBadge(unit.ID))
		unitDone = true
	}

	if err := l.persist(ctx, user); err != nil {
		return false, err
	}
	l.user = user

	if unitDone {
		l.logger.Info("unit completed", "unit", unit.ID)
	}
	return unitDone, nil
}

// Reset removes the stored record and logs the learner out.
func (l *Ledger) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.kv.Delete(ctx, RecordKey); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	l.user = DefaultUser()
	l.loggedIn = false
	return nil
}

func allModesDone(u UserProgress, unit *curriculum.Unit) bool {
	for _, m := range unit.Modes() {
		if !u.HasCompletedMode(unit.ID, m) {
			return false
		}
	}
	return true
}

// persist writes user as the stored record. Callers hold l.mu.
func (l *Ledger) persist(ctx context.Context, user UserProgress) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := l.kv.Put(ctx, RecordKey, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// appendScoreEvent logs the award. The event log is history only, so a
// failure is logged and otherwise ignored.
func (l *Ledger) appendScoreEvent(ctx context.Context, a Award, user UserProgress) {
	if l.events == nil {
		return
	}
	err := l.events.AppendScoreEvent(ctx, store.ScoreEventData{
		StudentID:  user.Profile.StudentID,
		SessionID:  a.SessionID,
		UnitID:     a.UnitID,
		Mode:       string(a.Mode),
		Reason:     a.Reason,
		Points:     a.Points,
		XPAfter:    user.XP,
		LevelAfter: user.Level,
	})
	if err != nil {
		l.logger.Warn("failed to log score event", "err", err)
	}
}
