package main

import (
	"errors"

	"github.com/spf13/cobra"

	"labyrinth/internal/app"
)

// NewViewCommand creates the view command.
func NewViewCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window that reveals the maze row by row",
		Long: `Open a window that reveals the maze row by row.

Keys: space pauses, enter reveals everything, R replays the same seed,
S draws a new seed, Q or Esc quits. Requires a build with -tags ebiten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			err = app.Run(app.Options{Maze: cfg.Maze, Scale: cfg.Scale, RevealRate: cfg.RevealRate})
			if errors.Is(err, app.ErrNoGUI) {
				return WrapExitError(ExitCommandError, "view unavailable", err)
			}
			return err
		},
	}

	addMazeFlags(cmd.Flags())
	cmd.Flags().Int("scale", 8, "pixels per raster cell")
	cmd.Flags().Int("reveal-rate", 30, "rows revealed per second")

	return cmd
}
