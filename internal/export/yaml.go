package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"labyrinth/internal/maze"
)

func init() {
	Register("yaml", func(w io.Writer, f *maze.Floor, opts Options) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f.Plan(opts.Seed)); err != nil {
			return err
		}
		return enc.Close()
	})
}
