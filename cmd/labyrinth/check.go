package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"labyrinth/internal/maze"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(root *RootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Generate mazes and verify they are perfect",
		Long: `Generate one maze per seed, starting at --seed, and verify each is
enclosed, fully connected and loop free. Exits 1 on the first failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, count)
		},
	}

	addMazeFlags(cmd.Flags())
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of consecutive seeds to check")

	return cmd
}

func runCheck(cmd *cobra.Command, root *RootOptions, count int) error {
	if count < 1 {
		return WrapExitError(ExitCommandError, "invalid count", fmt.Errorf("%d < 1", count))
	}
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var total maze.Stats
	for i := 0; i < count; i++ {
		run := cfg.Maze
		run.Seed += int64(i)

		grid := maze.NewWithConfig(run).Generate(run.Width, run.Height)
		stats, err := maze.Verify(maze.Enclose(grid))
		if err != nil {
			slog.Error("verification failed", "seed", run.Seed, "error", err)
			return WrapExitError(ExitFailure, fmt.Sprintf("seed %d", run.Seed), err)
		}
		slog.Debug("maze verified", "seed", run.Seed, "passages", stats.Passages, "dead_ends", stats.DeadEnds)

		total.Rooms += stats.Rooms
		total.Passages += stats.Passages
		total.DeadEnds += stats.DeadEnds
	}

	_, err = fmt.Fprintf(out, "ok: %d maze(s) %dx%d, %d rooms, %d passages, %d dead ends\n",
		count, cfg.Maze.Width, cfg.Maze.Height, total.Rooms, total.Passages, total.DeadEnds)
	return err
}

