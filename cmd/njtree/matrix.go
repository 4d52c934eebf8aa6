// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/arborwright/njtree/njoin"
)

// newMatrixCmd wires `njtree matrix`: build with edge emission suppressed,
// then render the expanded distance matrix.
func newMatrixCmd(configPath *string) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Run neighbor joining and print the expanded distance matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				logBuildError(loggerFromContext(cmd.Context()), "load-config", err)
				return err
			}

			return executeNJ(cmd, cfg, inputPath, "", njoin.Matrix)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a CSV distance matrix (default: stdin)")

	return cmd
}
