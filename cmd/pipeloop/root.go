package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/render"
)

// newRootCmd builds the pipeloop command. It is a constructor rather than a
// package-level var so tests get fresh flag state.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeloop [file]",
		Short: "Trace the pipe loop in a tile grid and count the cells it encloses",
		Long: `pipeloop reads a grid of pipe tiles (| - L J 7 F . S), walks the loop
through the S tile and prints two numbers: the distance along the loop to its
farthest cell, and how many cells the loop encloses.

Input is read from the named file, or from stdin when the file is "-" or omitted.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().Int("workers", config.DefaultWorkers, "Rows scanned in parallel during classification")
	cmd.Flags().Bool("render", false, "Print the classified grid before the results")
	cmd.Flags().String("color", config.DefaultColor, "Render color profile: auto, ascii, ansi, ansi256, truecolor")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	in, name, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()
	logger.WithField("input", name).Debug("reading grid")

	res, err := pipeloop.Analyze(in, pipeloop.WithWorkers(cfg.Workers), pipeloop.WithLogger(logger))
	if err != nil {
		logger.WithError(err).WithField("input", name).Error("analysis failed")
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Render {
		profile, err := render.ProfileByName(cfg.Color)
		if err != nil {
			return err
		}
		if err := render.Render(out, res.Grid, render.WithProfile(profile)); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "farthest: %d\n", res.Farthest)
	fmt.Fprintf(out, "interior: %d\n", res.Interior)

	return nil
}

// resolveConfig loads the config file and lets explicitly set flags win.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("render") {
		cfg.Render, _ = flags.GetBool("render")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// openInput returns the grid source named by args, defaulting to stdin.
func openInput(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, args[0], func() { _ = f.Close() }, nil
}
