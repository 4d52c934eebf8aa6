// SPDX-License-Identifier: MIT
package matrixrender

import (
	"fmt"
	"io"
	"strings"

	"github.com/arborwright/njtree/core"
)

// Render writes the expanded distance matrix: a header row (empty first
// field, then every node's name) followed by one row per node (name, then
// NumAllNodes distances formatted %.2f), comma-separated, newline-terminated.
//
// Complexity: O(NumAllNodes^2).
func Render(w io.Writer, tree *core.Tree) error {
	n := tree.NumAllNodes

	var header strings.Builder
	header.WriteByte(',')
	for i := 0; i < n; i++ {
		if i > 0 {
			header.WriteByte(',')
		}
		header.WriteString(tree.Nodes[i].Name)
	}
	header.WriteByte('\n')
	if _, err := io.WriteString(w, header.String()); err != nil {
		return fmt.Errorf("matrixrender: write header: %w", err)
	}

	for i := 0; i < n; i++ {
		var row strings.Builder
		row.WriteString(tree.Nodes[i].Name)
		for j := 0; j < n; j++ {
			row.WriteByte(',')
			fmt.Fprintf(&row, "%.2f", tree.Distance(i, j))
		}
		row.WriteByte('\n')
		if _, err := io.WriteString(w, row.String()); err != nil {
			return fmt.Errorf("matrixrender: write row %d: %w", i, err)
		}
	}

	return nil
}
