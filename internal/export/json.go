package export

import (
	"encoding/json"
	"io"

	"labyrinth/internal/maze"
)

func init() {
	Register("json", func(w io.Writer, f *maze.Floor, opts Options) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f.Plan(opts.Seed))
	})
}
