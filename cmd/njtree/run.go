// SPDX-License-Identifier: MIT
// File: run.go
// Role: the single execution path shared by every subcommand (and the
// bare root command's config-driven default): parse input under the
// config-file's limits, run Build in the requested mode, and render.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arborwright/njtree/distmatrix"
	"github.com/arborwright/njtree/njoin"
	"github.com/arborwright/njtree/render/edgestream"
	"github.com/arborwright/njtree/render/matrixrender"
	"github.com/arborwright/njtree/render/newick"
)

// renderModeFromName maps a config file's default_render_mode string to a
// njoin.RenderMode. An empty or unrecognized name falls back to Default so
// a config typo degrades gracefully instead of failing startup.
func renderModeFromName(name string) njoin.RenderMode {
	switch name {
	case "matrix":
		return njoin.Matrix
	case "newick":
		return njoin.Newick
	default:
		return njoin.Default
	}
}

// executeNJ parses inputPath (or stdin) under cfg's limits, runs neighbor
// joining in mode, and renders the result to stdout per mode. outlier is
// only consulted when mode is njoin.Newick.
func executeNJ(cmd *cobra.Command, cfg fileConfig, inputPath, outlier string, mode njoin.RenderMode) error {
	logger := loggerFromContext(cmd.Context())
	logger.Debug("resolved defaults", "max_taxa", cfg.MaxTaxa, "input_max", cfg.InputMax, "default_mode", cfg.DefaultMode)

	in, err := openInput(inputPath)
	if err != nil {
		logBuildError(logger, "open-input", err)
		return err
	}
	defer in.Close()

	dm, err := distmatrix.Parse(in, distmatrix.WithMaxTaxa(cfg.MaxTaxa), distmatrix.WithInputMax(cfg.InputMax))
	if err != nil {
		logBuildError(logger, "parse", err)
		return err
	}

	var sink njoin.EdgeSink
	if mode == njoin.Default {
		sink = edgestream.NewWriter(os.Stdout)
	}

	tree, err := njoin.Build(dm, njoin.Config{Mode: mode, Sink: sink})
	if err != nil {
		logBuildError(logger, "build", err)
		return err
	}

	switch mode {
	case njoin.Matrix:
		if err := matrixrender.Render(os.Stdout, tree); err != nil {
			logBuildError(logger, "render", err)
			return err
		}
	case njoin.Newick:
		if err := newick.Render(os.Stdout, tree, outlier); err != nil {
			logBuildError(logger, "render", err, "outlier", outlier)
			return err
		}
		os.Stdout.WriteString("\n")
	}

	logger.Info("njtree complete", "taxa", dm.N, "mode", int(mode))

	return nil
}
