package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"labyrinth/internal/core"
	"labyrinth/internal/maze"
)

// DefaultWallStyle is used for terminal output when colour is requested.
var DefaultWallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

// Text writes f as ASCII art, two characters per room:
//
//	+--+--+
//	|     |
//	+  +--+
//
// When style is non-nil every line is rendered through it. An empty floor
// writes nothing.
func Text(w io.Writer, f *maze.Floor, style *lipgloss.Style) error {
	if f.Empty() {
		return nil
	}
	g := Rasterize(f)

	var line strings.Builder
	for y := 0; y < g.H; y++ {
		line.Reset()
		for x := 0; x < g.W; x++ {
			line.WriteString(glyph(x, y, g.At(x, y)))
		}
		out := line.String()
		if style != nil {
			out = style.Render(out)
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func glyph(x, y int, cell uint8) string {
	wall := cell == core.CellWall
	switch {
	case x%2 == 0 && y%2 == 0:
		return "+"
	case y%2 == 0:
		if wall {
			return "--"
		}
		return "  "
	case x%2 == 0:
		if wall {
			return "|"
		}
		return " "
	default:
		return "  "
	}
}
