// SPDX-License-Identifier: MIT
package newick

import "github.com/arborwright/njtree/core"

// SelectOutlier resolves the leaf index to root the Newick tree at. If
// name is non-empty, it must byte-equal some leaf's name, else
// ErrUnknownOutlier. Otherwise the leaf maximizing its summed distance to
// every other leaf is chosen, ties broken to the lowest leaf index — the
// expanded matrix's leaf submatrix is untouched by neighbor joining, so
// tree.Distance over leaf indices is exactly the original input distances.
//
// Complexity: O(NumTaxa) with an explicit name, O(NumTaxa^2) otherwise.
func SelectOutlier(tree *core.Tree, name string) (int, error) {
	if name != "" {
		for i := 0; i < tree.NumTaxa; i++ {
			if tree.Nodes[i].Name == name {
				return i, nil
			}
		}

		return 0, ErrUnknownOutlier
	}

	best := 0
	bestSum := 0.0
	for i := 0; i < tree.NumTaxa; i++ {
		var sum float64
		for j := 0; j < tree.NumTaxa; j++ {
			if j == i {
				continue
			}
			sum += tree.Distance(i, j)
		}
		if i == 0 || sum > bestSum {
			bestSum = sum
			best = i
		}
	}

	return best, nil
}
