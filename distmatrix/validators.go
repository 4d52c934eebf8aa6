// SPDX-License-Identifier: MIT
// File: validators.go
// Purpose: single canonical source of truth for the post-read structural
// checks spec'd in §4.1 ("Matrix validation"), mirroring the teacher pack's
// matrix/validators.go convention of one exported validator per invariant.
// Each validator takes labels alongside the raw matrix purely so its
// *ParseError carries the implicated taxon, not just a bare row index.
package distmatrix

import (
	"fmt"
	"math"
)

// ValidateDiagonalZero checks d[i][i] == 0 for every i, compared at
// float32 precision — this tolerates the parser's fixed-point decimal
// conversion, per the spec's adopted intentional-tolerance reading.
//
// Complexity: O(n).
func ValidateDiagonalZero(d [][]float64, labels []Label) error {
	n := len(d)
	for i := 0; i < n; i++ {
		if float32(d[i][i]) != 0 {
			return &ParseError{Kind: KindNonZeroDiagonal, Row: i, Taxon: string(labels[i]), Err: ErrNonZeroDiagonal}
		}
	}

	return nil
}

// ValidateSymmetric checks d[i][j] == d[j][i] exactly (no tolerance) for
// every i<j, scanning only the strict upper triangle. Row is reported as
// the lower of the two offending indices.
//
// Complexity: O(n^2).
func ValidateSymmetric(d [][]float64, labels []Label) error {
	n := len(d)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d[i][j] != d[j][i] {
				return &ParseError{
					Kind:  KindAsymmetric,
					Row:   i,
					Taxon: string(labels[i]),
					Err:   fmt.Errorf("%w: (%d,%d)", ErrAsymmetric, i, j),
				}
			}
		}
	}

	return nil
}

// ValidateFinite checks every entry is finite and non-negative, per the
// DistanceMatrix construction invariant in spec §3. The accepted numeric
// grammar (digits and at most one '.') cannot itself produce a negative or
// non-finite value, so this validator is a defensive backstop, not a
// reachable failure path for input that passed field parsing.
//
// Complexity: O(n^2).
func ValidateFinite(d [][]float64, labels []Label) error {
	for i, row := range d {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return &ParseError{
					Kind:  KindNonFinite,
					Row:   i,
					Taxon: string(labels[i]),
					Err:   fmt.Errorf("%w: (%d,%d)", ErrNonFinite, i, j),
				}
			}
		}
	}

	return nil
}
