package maze

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Tracker partitions the rooms of the row currently being swept into
// connectivity sets. Members are stored as column indices into the bound row,
// so the tracker never holds references to rooms.
//
// Set ids come from a counter that lives as long as the tracker and is never
// reset between rows, which keeps a fresh singleton from colliding with an id
// still stamped on a carried-over room.
type Tracker struct {
	row  Row
	sets map[int]mapset.Set[int]
	next int
}

// NewTracker returns a tracker with no row bound and the id counter at zero.
func NewTracker() *Tracker {
	return &Tracker{sets: make(map[int]mapset.Set[int])}
}

// Reset binds the tracker to row and rebuilds the sets from the ids already
// stamped on its rooms. Rooms at NoSet are left out.
func (t *Tracker) Reset(row Row) {
	t.row = row
	clear(t.sets)
	for i := range row {
		id := row[i].SetID
		if id == NoSet {
			continue
		}
		set, ok := t.sets[id]
		if !ok {
			set = mapset.New[int]()
			t.sets[id] = set
		}
		set.Put(i)
	}
}

// SameSet reports whether rooms a and b carry the same valid set id.
func (t *Tracker) SameSet(a, b int) bool {
	id := t.row[a].SetID
	return id != NoSet && id == t.row[b].SetID
}

// Merge folds the set of room b into the set of room a. Both rooms must hold
// a valid id and belong to different sets; anything else means the sweep
// broke its own ordering and Merge panics.
func (t *Tracker) Merge(a, b int) {
	into, from := t.row[a].SetID, t.row[b].SetID
	if into == NoSet || from == NoSet {
		panic(fmt.Sprintf("maze: merge of unassigned room (columns %d=%d, %d=%d)", a, into, b, from))
	}
	if into == from {
		panic(fmt.Sprintf("maze: merge within set %d (columns %d, %d)", into, a, b))
	}

	dst := t.sets[into]
	t.sets[from].Each(func(i int) {
		t.row[i].SetID = into
		dst.Put(i)
	})
	delete(t.sets, from)
}

// Remove detaches room i from its set and resets its id. Rooms already at
// NoSet are left alone.
func (t *Tracker) Remove(i int) {
	id := t.row[i].SetID
	if id == NoSet {
		return
	}
	if set, ok := t.sets[id]; ok {
		set.Remove(i)
		if set.Size() == 0 {
			delete(t.sets, id)
		}
	}
	t.row[i].SetID = NoSet
}

// CreateSingleton gives room i a brand new set if it has none.
func (t *Tracker) CreateSingleton(i int) {
	if t.row[i].SetID != NoSet {
		return
	}
	id := t.next
	t.next++

	set := mapset.New[int]()
	set.Put(i)
	t.sets[id] = set
	t.row[i].SetID = id
}

// CanAddVerticalClosure reports whether a back wall may be added to room i
// without sealing its set off from the next row: some other member of the set
// must still be open downwards.
func (t *Tracker) CanAddVerticalClosure(i int) bool {
	id := t.row[i].SetID
	if id == NoSet {
		return false
	}
	set, ok := t.sets[id]
	if !ok {
		return false
	}
	open := false
	set.Each(func(j int) {
		if j != i && !t.row[j].Back {
			open = true
		}
	})
	return open
}

// Len returns the number of live sets. Len and Members are diagnostics; the
// sweep itself does not use them.
func (t *Tracker) Len() int { return len(t.sets) }

// Members returns the sorted column indices stamped with id.
func (t *Tracker) Members(id int) []int {
	set, ok := t.sets[id]
	if !ok {
		return nil
	}
	members := make([]int, 0, set.Size())
	set.Each(func(i int) { members = append(members, i) })
	slices.Sort(members)
	return members
}
