package render

import (
	"image/color"

	"labyrinth/internal/core"
)

// Palette maps raster cell values to colours for the viewer.
var Palette = []color.RGBA{
	core.CellFloor:  {R: 236, G: 228, B: 212, A: 255},
	core.CellWall:   {R: 40, G: 44, B: 52, A: 255},
	core.CellHidden: {R: 96, G: 100, B: 110, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
