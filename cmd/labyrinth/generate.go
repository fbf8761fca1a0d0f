package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"labyrinth/internal/export"
	"labyrinth/internal/maze"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and write its floor plan",
		Long: `Generate a maze and write its floor plan.

Formats: ` + strings.Join(export.Formats(), ", ") + `.
The same width, height, seed and closure bias always produce the same maze.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root)
		},
	}

	addMazeFlags(cmd.Flags())
	cmd.Flags().StringP("format", "f", "text", "output format")
	cmd.Flags().Bool("color", false, "colour walls in text output")
	cmd.Flags().StringP("out", "o", "", "write to file instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *RootOptions) error {
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	if _, err := export.Lookup(cfg.Format); err != nil {
		return WrapExitError(ExitCommandError, "invalid format", err)
	}

	gen := maze.NewWithConfig(cfg.Maze)
	floor := maze.Enclose(gen.Generate(cfg.Maze.Width, cfg.Maze.Height))

	w := cmd.OutOrStdout()
	if cfg.Out != "" {
		file, err := os.Create(cfg.Out)
		if err != nil {
			return WrapExitError(ExitCommandError, "create output", err)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				slog.Error("error closing output", "path", cfg.Out, "error", closeErr)
			}
		}()
		w = file
	}

	if err := export.Write(w, cfg.Format, floor, export.Options{Seed: cfg.Maze.Seed, Color: cfg.Color}); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}

	slog.Debug("maze written",
		"width", cfg.Maze.Width,
		"height", cfg.Maze.Height,
		"seed", cfg.Maze.Seed,
		"format", cfg.Format,
		"out", cfg.Out,
	)
	return nil
}
