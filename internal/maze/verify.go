package maze

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
)

var (
	// ErrDisconnected means some room cannot be reached from the first one.
	ErrDisconnected = errors.New("maze: disconnected")
	// ErrCycle means an open passage joins two rooms that were already connected.
	ErrCycle = errors.New("maze: cycle")
	// ErrPassageCount means the number of open passages is not rooms-1.
	ErrPassageCount = errors.New("maze: wrong passage count")
	// ErrOpenBoundary means a wall on the outer edge is missing.
	ErrOpenBoundary = errors.New("maze: open boundary")
)

// Stats summarises a verified floor.
type Stats struct {
	Rooms    int `json:"rooms"`
	Passages int `json:"passages"`
	DeadEnds int `json:"dead_ends"`
}

// Verify checks that f is a perfect maze: enclosed, fully connected, and
// with exactly one path between any two rooms. An empty floor is trivially
// valid.
func Verify(f *Floor) (Stats, error) {
	stats := Stats{Rooms: f.W * f.H}
	if f.Empty() {
		return stats, nil
	}

	if err := checkBoundary(f); err != nil {
		return stats, err
	}

	elems := make([]*disjoint.Element, f.W*f.H)
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}
	join := func(a, b int) error {
		if elems[a].Find() == elems[b].Find() {
			return fmt.Errorf("%w: passage %d-%d closes a loop", ErrCycle, a, b)
		}
		disjoint.Union(elems[a], elems[b])
		stats.Passages++
		return nil
	}

	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if f.OpenRight(x, y) {
				if err := join(f.Index(x, y), f.Index(x+1, y)); err != nil {
					return stats, err
				}
			}
			if f.OpenDown(x, y) {
				if err := join(f.Index(x, y), f.Index(x, y+1)); err != nil {
					return stats, err
				}
			}
		}
	}

	if reached := Reachable(f, 0, 0); reached != stats.Rooms {
		return stats, fmt.Errorf("%w: reached %d of %d rooms", ErrDisconnected, reached, stats.Rooms)
	}
	if stats.Passages != stats.Rooms-1 {
		return stats, fmt.Errorf("%w: %d passages for %d rooms", ErrPassageCount, stats.Passages, stats.Rooms)
	}

	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if stats.Rooms > 1 && len(neighbours(f, x, y)) == 1 {
				stats.DeadEnds++
			}
		}
	}
	return stats, nil
}

// Reachable counts the rooms reachable from (x, y) through open passages.
func Reachable(f *Floor, x, y int) int {
	if f.Empty() {
		return 0
	}
	seen := make([]bool, f.W*f.H)
	seen[f.Index(x, y)] = true
	queue := [][2]int{{x, y}}
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, n := range neighbours(f, cur[0], cur[1]) {
			idx := f.Index(n[0], n[1])
			if seen[idx] {
				continue
			}
			seen[idx] = true
			queue = append(queue, n)
		}
	}
	return count
}

func neighbours(f *Floor, x, y int) [][2]int {
	var out [][2]int
	if f.OpenRight(x, y) {
		out = append(out, [2]int{x + 1, y})
	}
	if x > 0 && f.OpenRight(x-1, y) {
		out = append(out, [2]int{x - 1, y})
	}
	if f.OpenDown(x, y) {
		out = append(out, [2]int{x, y + 1})
	}
	if y > 0 && f.OpenDown(x, y-1) {
		out = append(out, [2]int{x, y - 1})
	}
	return out
}

func checkBoundary(f *Floor) error {
	for x := 0; x < f.W; x++ {
		if !f.At(x, 0).Front || !f.At(x, f.H-1).Back {
			return fmt.Errorf("%w: column %d", ErrOpenBoundary, x)
		}
	}
	for y := 0; y < f.H; y++ {
		if !f.At(0, y).Left || !f.At(f.W-1, y).Right {
			return fmt.Errorf("%w: row %d", ErrOpenBoundary, y)
		}
	}
	return nil
}
