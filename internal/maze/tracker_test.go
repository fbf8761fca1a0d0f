package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowWithIDs(ids ...int) Row {
	row := make(Row, len(ids))
	for i, id := range ids {
		row[i] = Room{SetID: id}
	}
	return row
}

func TestTrackerResetSkipsUnassigned(t *testing.T) {
	tr := NewTracker()
	tr.Reset(rowWithIDs(3, NoSet, 3, 5))

	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, []int{0, 2}, tr.Members(3))
	assert.Equal(t, []int{3}, tr.Members(5))
	assert.Nil(t, tr.Members(NoSet))
}

func TestTrackerResetDiscardsPreviousRow(t *testing.T) {
	tr := NewTracker()
	tr.Reset(rowWithIDs(1, 1))
	tr.Reset(rowWithIDs(NoSet, 2))

	assert.Equal(t, 1, tr.Len())
	assert.Nil(t, tr.Members(1))
	assert.Equal(t, []int{1}, tr.Members(2))
}

func TestTrackerSameSet(t *testing.T) {
	tr := NewTracker()
	tr.Reset(rowWithIDs(4, 4, 7, NoSet, NoSet))

	assert.True(t, tr.SameSet(0, 1))
	assert.False(t, tr.SameSet(1, 2))
	assert.False(t, tr.SameSet(2, 3))
	assert.False(t, tr.SameSet(3, 4), "two unassigned rooms share no set")
}

func TestTrackerMergeRestampsMembers(t *testing.T) {
	row := rowWithIDs(1, 2, 2, 1)
	tr := NewTracker()
	tr.Reset(row)

	tr.Merge(0, 1)

	for i, room := range row {
		assert.Equal(t, 1, room.SetID, "column %d", i)
	}
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, []int{0, 1, 2, 3}, tr.Members(1))
	assert.Nil(t, tr.Members(2))
}

func TestTrackerMergePanicsOnUnassignedRoom(t *testing.T) {
	tr := NewTracker()
	tr.Reset(rowWithIDs(1, NoSet))

	assert.Panics(t, func() { tr.Merge(0, 1) })
	assert.Panics(t, func() { tr.Merge(1, 0) })
}

func TestTrackerMergePanicsWithinSet(t *testing.T) {
	tr := NewTracker()
	tr.Reset(rowWithIDs(1, 1))

	assert.Panics(t, func() { tr.Merge(0, 1) })
}

func TestTrackerRemove(t *testing.T) {
	row := rowWithIDs(1, 1, 2)
	tr := NewTracker()
	tr.Reset(row)

	tr.Remove(0)
	assert.Equal(t, NoSet, row[0].SetID)
	assert.Equal(t, []int{1}, tr.Members(1))

	tr.Remove(2)
	assert.Equal(t, NoSet, row[2].SetID)
	assert.Nil(t, tr.Members(2), "empty set must be erased")
	assert.Equal(t, 1, tr.Len())

	tr.Remove(2)
	assert.Equal(t, NoSet, row[2].SetID)
	assert.Equal(t, 1, tr.Len())
}

func TestTrackerCreateSingletonNeverReusesIDs(t *testing.T) {
	tr := NewTracker()

	first := newRow(2)
	tr.Reset(first)
	tr.CreateSingleton(0)
	tr.CreateSingleton(1)
	assert.Equal(t, 0, first[0].SetID)
	assert.Equal(t, 1, first[1].SetID)

	tr.CreateSingleton(0)
	assert.Equal(t, 0, first[0].SetID, "assigned room keeps its set")

	second := newRow(2)
	tr.Reset(second)
	tr.CreateSingleton(1)
	tr.CreateSingleton(0)
	assert.Equal(t, 2, second[1].SetID)
	assert.Equal(t, 3, second[0].SetID)
	assert.Equal(t, []int{1}, tr.Members(2))
}

func TestCanAddVerticalClosureRefusesLastOpenRoom(t *testing.T) {
	row := rowWithIDs(1, 1, 1)
	row[0].Back = true
	row[2].Back = true
	tr := NewTracker()
	tr.Reset(row)

	assert.False(t, tr.CanAddVerticalClosure(1), "room 1 is the only way down for set 1")
	assert.True(t, tr.CanAddVerticalClosure(0), "room 0 is closed already but room 1 is open")
}

func TestCanAddVerticalClosureSingleton(t *testing.T) {
	row := newRow(1)
	tr := NewTracker()
	tr.Reset(row)

	assert.False(t, tr.CanAddVerticalClosure(0), "unassigned room")

	tr.CreateSingleton(0)
	assert.False(t, tr.CanAddVerticalClosure(0), "singleton has no other escape")
}

func TestCanAddVerticalClosureUntilOneRemains(t *testing.T) {
	row := rowWithIDs(9, 9, 9, 9)
	tr := NewTracker()
	tr.Reset(row)

	closed := 0
	for j := range row {
		if tr.CanAddVerticalClosure(j) {
			row[j].Back = true
			closed++
		}
	}
	require.Equal(t, 3, closed)
	assert.False(t, row[3].Back, "last room of the set must stay open")
}
