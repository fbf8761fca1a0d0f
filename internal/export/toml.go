package export

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"labyrinth/internal/maze"
)

func init() {
	Register("toml", func(w io.Writer, f *maze.Floor, opts Options) error {
		return toml.NewEncoder(w).Encode(f.Plan(opts.Seed))
	})
}
