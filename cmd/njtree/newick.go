// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/arborwright/njtree/njoin"
)

// newNewickCmd wires `njtree newick --outlier=NAME`: build with edge
// emission suppressed, then serialize as a rooted Newick string.
func newNewickCmd(configPath *string) *cobra.Command {
	var inputPath string
	var outlier string

	cmd := &cobra.Command{
		Use:   "newick",
		Short: "Run neighbor joining and print a rooted Newick tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				logBuildError(loggerFromContext(cmd.Context()), "load-config", err)
				return err
			}

			return executeNJ(cmd, cfg, inputPath, outlier, njoin.Newick)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a CSV distance matrix (default: stdin)")
	cmd.Flags().StringVar(&outlier, "outlier", "", "leaf label to root at (default: greatest row-sum leaf)")

	return cmd
}
