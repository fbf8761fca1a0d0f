package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labyrinth/pkg/core"
)

// fixedSource answers every draw with pick(n) and counts the draws.
type fixedSource struct {
	pick  func(n int) int
	draws int
}

func (s *fixedSource) IntN(n int) int {
	s.draws++
	return s.pick(n)
}

func alwaysHigh() *fixedSource { return &fixedSource{pick: func(n int) int { return n - 1 }} }
func alwaysLow() *fixedSource  { return &fixedSource{pick: func(int) int { return 0 }} }

func TestGenerateDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		src := alwaysLow()
		grid := Generate(dims[0], dims[1], src)
		assert.Empty(t, grid, "%dx%d", dims[0], dims[1])
		assert.Zero(t, src.draws)
	}
}

func TestGenerateSingleRoom(t *testing.T) {
	grid := Generate(1, 1, core.NewRNG(1))

	require.Len(t, grid, 1)
	require.Len(t, grid[0], 1)
	assert.Equal(t, Walls{}, grid[0][0].Walls)
	assert.Equal(t, 0, grid[0][0].SetID)
}

func TestGeneratePerfectMaze(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 3}, {16, 16}, {31, 9}}
	for _, size := range sizes {
		for seed := int64(0); seed < 20; seed++ {
			name := fmt.Sprintf("%dx%d/seed=%d", size[0], size[1], seed)
			grid := Generate(size[0], size[1], core.NewRNG(seed))
			require.Equal(t, size[0], grid.Width(), name)
			require.Equal(t, size[1], grid.Height(), name)

			floor := Enclose(grid)
			stats, err := Verify(floor)
			require.NoError(t, err, name)
			assert.Equal(t, size[0]*size[1]-1, stats.Passages, name)
			assert.Equal(t, size[0]*size[1], Reachable(floor, size[0]-1, size[1]-1), name)
		}
	}
}

func TestGeneratePerfectMazeAcrossBiases(t *testing.T) {
	for bias := 0; bias <= 4; bias++ {
		g := NewGenerator(core.NewRNG(int64(100 + bias)))
		g.SetClosureBias(bias)
		grid := g.Generate(12, 10)
		_, err := Verify(Enclose(grid))
		require.NoError(t, err, "bias %d", bias)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(20, 14, core.NewRNG(99))
	b := Generate(20, 14, core.NewRNG(99))
	require.Equal(t, a, b)

	c := Generate(20, 14, core.NewRNG(100))
	assert.NotEqual(t, Enclose(a).Plan(0), Enclose(c).Plan(0))
}

func TestNewWithConfigMatchesSeededSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	want := Generate(cfg.Width, cfg.Height, core.NewRNG(5))
	got := NewWithConfig(cfg).Generate(cfg.Width, cfg.Height)
	assert.Equal(t, want, got)
}

func TestSetClosureBiasClamps(t *testing.T) {
	g := NewGenerator(alwaysLow())
	assert.Equal(t, DefaultClosureBias, g.ClosureBias())

	g.SetClosureBias(9)
	assert.Equal(t, 4, g.ClosureBias())
	g.SetClosureBias(-2)
	assert.Equal(t, 0, g.ClosureBias())
}

func TestGenerateZeroBiasNeverClosesDownwards(t *testing.T) {
	g := NewGenerator(core.NewRNG(3))
	g.SetClosureBias(0)
	grid := g.Generate(9, 9)
	for i, row := range grid {
		for j, room := range row {
			assert.False(t, room.Back, "room (%d,%d)", j, i)
		}
	}
}

// Every coin lands on "wall" and every closure is attempted. Nothing merges
// until the last row, so that row must be opened end to end.
func TestGenerateForcedWallsMergeLastRow(t *testing.T) {
	const w, h = 6, 4
	grid := Generate(w, h, alwaysHigh())

	for i, row := range grid {
		for j, room := range row {
			assert.False(t, room.Back, "room (%d,%d): singleton sets cannot close", j, i)
			if j == w-1 {
				continue
			}
			if i == h-1 {
				assert.False(t, room.Right, "last row room %d must be opened", j)
			} else {
				assert.True(t, room.Right, "room (%d,%d)", j, i)
			}
		}
	}

	last := grid[h-1]
	for j := range last {
		assert.Equal(t, last[0].SetID, last[j].SetID, "last row must be one set")
	}
	_, err := Verify(Enclose(grid))
	require.NoError(t, err)
}

// Every coin lands on "open": row 0 merges fully, so every later pair is
// already connected and no further coins are drawn.
func TestGenerateCoinOnlyDrawnForDisjointPairs(t *testing.T) {
	const w, h = 5, 4
	src := alwaysLow()
	grid := Generate(w, h, src)

	assert.Equal(t, (w-1)+w*h, src.draws)
	for j := 0; j < w-1; j++ {
		assert.False(t, grid[0][j].Right)
	}
	for i := 1; i < h; i++ {
		for j := 0; j < w-1; j++ {
			assert.True(t, grid[i][j].Right, "room (%d,%d)", j, i)
		}
	}
	_, err := Verify(Enclose(grid))
	require.NoError(t, err)
}

func TestGenerateNeverIsolatesASet(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := NewGenerator(core.NewRNG(seed))
		g.SetClosureBias(4)
		grid := g.Generate(10, 8)

		for i := 0; i < len(grid)-1; i++ {
			open := map[int]bool{}
			for _, room := range grid[i] {
				if _, ok := open[room.SetID]; !ok {
					open[room.SetID] = false
				}
				if !room.Back {
					open[room.SetID] = true
				}
			}
			for id, ok := range open {
				assert.True(t, ok, "seed %d row %d: set %d sealed off", seed, i, id)
			}
		}
	}
}

func TestGenerateSingleColumnIsCorridor(t *testing.T) {
	grid := Generate(1, 6, core.NewRNG(11))
	for i, row := range grid {
		assert.Equal(t, Walls{}, row[0].Walls, "row %d", i)
	}
}
