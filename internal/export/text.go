package export

import (
	"io"

	"labyrinth/internal/maze"
	"labyrinth/internal/render"
)

func init() {
	Register("text", func(w io.Writer, f *maze.Floor, opts Options) error {
		if opts.Color {
			return render.Text(w, f, &render.DefaultWallStyle)
		}
		return render.Text(w, f, nil)
	})
}
