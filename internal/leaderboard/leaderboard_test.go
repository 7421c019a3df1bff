package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
)

var roster = []curriculum.Classmate{
	{StudentID: "hs001", Name: "Nguyen Van A", ClassID: "9A", XP: 1800},
	{StudentID: "hs002", Name: "Tran Thi B", ClassID: "9A", XP: 1500},
	{StudentID: "hs003", Name: "Le Van C", ClassID: "9A", XP: 1500},
	{StudentID: "hs004", Name: "Pham Thi D", ClassID: "9A", XP: 950},
}

func learner(id string, xp int) progress.UserProgress {
	u := progress.DefaultUser()
	u.Profile = progress.Profile{Name: "Lan", ClassID: "9A", StudentID: id}
	u.XP = xp
	return u
}

func TestRank_OrdersByXP(t *testing.T) {
	entries := Rank(roster, learner("hs042", 1600))
	require.Len(t, entries, 5)

	var names []string
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Nguyen Van A", "Lan", "Le Van C", "Tran Thi B", "Pham Thi D"}, names)

	me, ok := Position(entries)
	require.True(t, ok)
	assert.Equal(t, 2, me.Rank)
	assert.True(t, me.Current)
}

func TestRank_LiveRecordReplacesRosterRow(t *testing.T) {
	entries := Rank(roster, learner("hs004", 2000))
	require.Len(t, entries, 4)

	assert.Equal(t, "hs004", entries[0].StudentID)
	assert.Equal(t, 2000, entries[0].XP)
	assert.Equal(t, "Lan", entries[0].Name)
	assert.True(t, entries[0].Current)

	for _, e := range entries[1:] {
		assert.False(t, e.Current)
	}
}

func TestRank_DuplicateRosterIDs(t *testing.T) {
	dup := append([]curriculum.Classmate{}, roster...)
	dup = append(dup, curriculum.Classmate{StudentID: "hs001", Name: "Nguyen Van A (old)", XP: 10})

	entries := Rank(dup, learner("guest", 0))
	assert.Len(t, entries, 5)
	assert.Equal(t, 1800, entries[0].XP)
	assert.Equal(t, "guest", entries[4].StudentID)
}

func TestRank_EmptyRoster(t *testing.T) {
	entries := Rank(nil, learner("hs042", 0))
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Rank)
}
