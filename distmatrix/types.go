// SPDX-License-Identifier: MIT
package distmatrix

// Limits, exposed as compile-time constants per the external interface
// contract: field byte length, taxon count, and the derived node-table
// ceiling used by the neighbor-joining engine. These are Parse's defaults;
// WithMaxTaxa/WithInputMax override them per call (e.g. from a CLI config
// file) without changing what an unconfigured caller gets.
const (
	// InputMax is the maximum number of bytes (exclusive of delimiters) a
	// single CSV field may contain.
	InputMax = 32

	// MaxTaxa is the maximum number of taxa (header labels) a matrix may name.
	MaxTaxa = 256

	// MaxNodes is the ceiling on synthesized + leaf nodes: 2*MaxTaxa-2.
	MaxNodes = 2*MaxTaxa - 2
)

// Label is a taxon name: a bounded-length, non-empty byte string, unique
// across a DistanceMatrix. It is a defined type (not a bare string) purely
// so call sites and error messages read self-documentingly.
type Label string

// DistanceMatrix is a validated, symmetric, zero-diagonal distance matrix
// over n ordered, uniquely-labeled taxa. Once returned by Parse, it is
// read-only; the neighbor-joining engine never mutates a DistanceMatrix
// directly — it copies D into its own expanded working matrix (core.Tree.D).
type DistanceMatrix struct {
	N      int
	Labels []Label
	D      [][]float64
}

// RowSum returns the sum of row i across all n taxa: the sum of distances
// from one taxon to every other taxon. Not used by the engine itself
// (which sums over its own active-set-scoped view) nor by the Newick
// renderer's outlier search (which sums over the tree's leaf rows).
//
// Complexity: O(n).
func (m *DistanceMatrix) RowSum(i int) float64 {
	var sum float64
	for j := 0; j < m.N; j++ {
		if j == i {
			continue
		}
		sum += m.D[i][j]
	}

	return sum
}

// IndexOf returns the column/row index of the given label, and whether it
// was found. Uniqueness of labels is a documented invariant of a
// well-formed matrix, not a condition Parse independently checks — a
// duplicate label has no dedicated error kind, so IndexOf simply returns
// the first match.
//
// Complexity: O(n).
func (m *DistanceMatrix) IndexOf(label string) (int, bool) {
	for i, l := range m.Labels {
		if string(l) == label {
			return i, true
		}
	}

	return 0, false
}
