package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"labyrinth/internal/config"
	"labyrinth/internal/maze"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the root command for the labyrinth CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "labyrinth",
		Short:         "Generate perfect mazes one row at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default .labyrinth.{yaml,toml,json})")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewViewCommand(opts))

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// addMazeFlags registers the generation flags shared by every subcommand.
func addMazeFlags(fs *pflag.FlagSet) {
	d := maze.DefaultConfig()
	fs.Int("width", d.Width, "rooms per row")
	fs.Int("height", d.Height, "number of rows")
	fs.Int64("seed", d.Seed, "random seed")
	fs.Int("closure-bias", d.ClosureBias, "closure outcomes out of 4 that try to wall a room off downwards")
}

// loadConfig resolves the effective configuration for cmd.
func loadConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, error) {
	v, err := config.New(opts.ConfigPath)
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "load config", err)
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "bind flags", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return cfg, WrapExitError(ExitCommandError, "invalid config", err)
	}
	return cfg, nil
}
