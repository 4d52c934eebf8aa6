// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/arborwright/njtree/njoin"
)

// newBuildCmd wires `njtree build`: spec's Default render mode, streaming
// edges to stdout as they are joined.
func newBuildCmd(configPath *string) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run neighbor joining and stream the edge list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				logBuildError(loggerFromContext(cmd.Context()), "load-config", err)
				return err
			}

			return executeNJ(cmd, cfg, inputPath, "", njoin.Default)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a CSV distance matrix (default: stdin)")

	return cmd
}
