// SPDX-License-Identifier: MIT
package njoin

import "errors"

var (
	// ErrNodeLimitExceeded indicates a synthesized node did not fit the
	// tree's preallocated node table (2n-2 slots); it wraps
	// core.ErrNodeCapacityExceeded. distmatrix.MaxNodes is not consulted.
	// Defensive: Build synthesizes exactly n-2 internal nodes, so the check
	// does not fire, the same posture the teacher takes with post-loop
	// invariant checks.
	ErrNodeLimitExceeded = errors.New("njoin: node limit exceeded")

	// ErrEmptyMatrix indicates Build was called with a zero-taxon matrix.
	ErrEmptyMatrix = errors.New("njoin: distance matrix has no taxa")
)
