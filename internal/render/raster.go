package render

import (
	"labyrinth/internal/core"
	"labyrinth/internal/maze"
)

// Rasterize draws f onto a (2W+1) x (2H+1) byte grid. Rooms sit on odd
// coordinates, wall segments between them, and every corner post is a wall.
func Rasterize(f *maze.Floor) *core.ByteGrid {
	g := core.NewByteGrid(2*f.W+1, 2*f.H+1)
	g.Fill(core.CellFloor)
	if f.Empty() {
		g.Fill(core.CellWall)
		return g
	}

	for y := 0; y <= f.H; y++ {
		for x := 0; x <= f.W; x++ {
			g.Set(2*x, 2*y, core.CellWall)
		}
	}

	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			room := f.At(x, y)
			if y == 0 && room.Front {
				g.Set(2*x+1, 0, core.CellWall)
			}
			if x == 0 && room.Left {
				g.Set(0, 2*y+1, core.CellWall)
			}
			if room.Back {
				g.Set(2*x+1, 2*y+2, core.CellWall)
			}
			if room.Right {
				g.Set(2*x+2, 2*y+1, core.CellWall)
			}
		}
	}
	return g
}

// Reveal copies src into dst and hides every room row past the first shown.
// dst must have the same size as src.
func Reveal(dst, src *core.ByteGrid, shown int) {
	copy(dst.Cells(), src.Cells())
	HideRows(dst, shown)
}

// HideRows marks every raster cell below the first shown rooms as hidden.
func HideRows(g *core.ByteGrid, shown int) {
	for y := 2*shown + 1; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.Set(x, y, core.CellHidden)
		}
	}
}
