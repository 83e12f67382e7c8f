// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	errOutput = errors.New("unknown output format")
	errColor  = errors.New("unknown color mode")
	errRank   = errors.New("extent rank must be 1..5")
)

const (
	outputText = "text"
	outputYAML = "yaml"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// globalConfig carries the persistent flags shared by every subcommand.
type globalConfig struct {
	Output  string
	Color   string
	Verbose bool

	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	cfg := &globalConfig{}
	root := &cobra.Command{
		Use:           "ndinspect",
		Short:         "Inspect n-dimensional view layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.setup(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.Output, "output", "o", outputText, "output format: text|yaml")
	pf.StringVar(&cfg.Color, "color", colorAuto, "colorize text output: auto|always|never")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(newScanCmd(cfg), newSectionCmd(cfg), newSliceCmd(cfg))

	return root
}

// setup validates the persistent flags, configures color and the logger.
func (cfg *globalConfig) setup(out, errOut io.Writer) error {
	switch cfg.Output {
	case outputText, outputYAML:
	default:
		return fmt.Errorf("--output %q: %w", cfg.Output, errOutput)
	}

	switch cfg.Color {
	case colorAlways:
		color.NoColor = false
	case colorNever:
		color.NoColor = true
	case colorAuto:
		color.NoColor = !isTerminal(out)
	default:
		return fmt.Errorf("--color %q: %w", cfg.Color, errColor)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	cfg.log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
