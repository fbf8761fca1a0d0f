package maze

import (
	"log/slog"

	"labyrinth/pkg/core"
)

// Source is the random stream consumed by the generator. *rand.Rand from
// math/rand/v2 and *core.RNG both satisfy it.
type Source interface {
	IntN(n int) int
}

// closureOutcomes is the number of equally likely outcomes drawn for every
// vertical closure decision.
const closureOutcomes = 4

// Generator builds perfect mazes one row at a time.
//
// The random stream is consumed in a fixed order: for each row, one coin per
// adjacent pair that is not already connected (left to right), then one
// closure draw per column (left to right). Identical sources therefore give
// identical grids.
type Generator struct {
	rng  Source
	bias int
}

// NewGenerator returns a generator drawing from rng with the default
// closure bias.
func NewGenerator(rng Source) *Generator {
	return &Generator{rng: rng, bias: DefaultClosureBias}
}

// NewWithConfig returns a generator seeded from cfg.
func NewWithConfig(cfg Config) *Generator {
	g := NewGenerator(core.NewRNG(cfg.Seed))
	g.SetClosureBias(cfg.ClosureBias)
	return g
}

// SetClosureBias sets how many of the four closure outcomes attempt to add a
// back wall. Values are clamped to [0, 4].
func (g *Generator) SetClosureBias(bias int) {
	g.bias = min(max(bias, 0), closureOutcomes)
}

// ClosureBias returns the configured closure bias.
func (g *Generator) ClosureBias() int { return g.bias }

// Generate is shorthand for NewGenerator(rng).Generate(width, height).
func Generate(width, height int, rng Source) Grid {
	return NewGenerator(rng).Generate(width, height)
}

// Generate sweeps a width x height maze. A zero dimension yields an empty
// grid. Boundary walls are not applied; see Enclose.
func (g *Generator) Generate(width, height int) Grid {
	if width == 0 || height == 0 {
		return Grid{}
	}

	tracker := NewTracker()
	grid := make(Grid, 0, height)

	for i := 0; i < height; i++ {
		var row Row
		if i == 0 {
			row = newRow(width)
			tracker.Reset(row)
		} else {
			row = g.carry(grid[i-1], tracker)
		}

		for j := range row {
			tracker.CreateSingleton(j)
		}

		g.joinAcross(row, tracker)
		g.closeDown(row, tracker)

		if i == height-1 {
			finalize(row, tracker)
		}
		grid = append(grid, row)
	}

	slog.Debug("maze generated", "width", width, "height", height, "closure_bias", g.bias)
	return grid
}

// carry copies prev into a new row and severs every room that was walled off
// from above: it loses its set and its back wall together.
func (g *Generator) carry(prev Row, tracker *Tracker) Row {
	row := make(Row, len(prev))
	copy(row, prev)
	for j := range row {
		row[j].Right = false
	}

	tracker.Reset(row)
	for j := range row {
		if row[j].Back {
			tracker.Remove(j)
			row[j].Back = false
		}
	}
	return row
}

func (g *Generator) joinAcross(row Row, tracker *Tracker) {
	for j := 0; j < len(row)-1; j++ {
		if tracker.SameSet(j, j+1) || g.rng.IntN(2) > 0 {
			row[j].Right = true
			continue
		}
		tracker.Merge(j, j+1)
	}
}

func (g *Generator) closeDown(row Row, tracker *Tracker) {
	threshold := closureOutcomes - g.bias
	for j := range row {
		if g.rng.IntN(closureOutcomes) >= threshold && tracker.CanAddVerticalClosure(j) {
			row[j].Back = true
		}
	}
}

// finalize joins every set left on the last row so the whole maze ends up in
// one component.
func finalize(row Row, tracker *Tracker) {
	for j := 0; j < len(row)-1; j++ {
		if !tracker.SameSet(j, j+1) {
			row[j].Right = false
			tracker.Merge(j, j+1)
		}
	}
}
