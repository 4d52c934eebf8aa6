// SPDX-License-Identifier: MIT
// Command njtree is the ambient CLI shell around the core engine: argument
// parsing, help text, log formatting, and process exit codes — all named
// in spec.md §1 as external collaborators the core itself never touches.
// Structure mirrors the teacher pack's cmd/stacktower/main.go +
// internal/cli root-command split.
package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var verbose bool
	var configPath string
	var inputPath string
	var outlier string

	root := &cobra.Command{
		Use:           "njtree",
		Short:         "Reconstruct phylogenetic trees by neighbor joining",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			return nil
		},
		// RunE only fires when invoked with no subcommand: the config
		// file's default_render_mode picks which operation bare `njtree`
		// performs, so a config-only setup works without naming a verb.
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(configPath)
			if err != nil {
				logBuildError(logger, "load-config", err)
				return err
			}

			return executeNJ(cmd, cfg, inputPath, outlier, renderModeFromName(cfg.DefaultMode))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML defaults file")
	root.Flags().StringVar(&inputPath, "input", "", "path to a CSV distance matrix (default: stdin)")
	root.Flags().StringVar(&outlier, "outlier", "", "leaf label to root at, when default_render_mode is newick")

	root.AddCommand(newBuildCmd(&configPath))
	root.AddCommand(newMatrixCmd(&configPath))
	root.AddCommand(newNewickCmd(&configPath))

	return root.Execute()
}

// openInput returns the CSV byte source named by --input, or stdin when
// inputPath is empty.
func openInput(inputPath string) (io.ReadCloser, error) {
	if inputPath == "" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("njtree: open input: %w", err)
	}

	return f, nil
}
