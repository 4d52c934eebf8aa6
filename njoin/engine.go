// SPDX-License-Identifier: MIT
// File: engine.go
// Role: the neighbor-joining main loop. No I/O, no CLI concerns — Build
// consumes a validated DistanceMatrix and returns a linked core.Tree or a
// wrapped error from the taxonomy in errors.go / core's own sentinels.
package njoin

import (
	"fmt"

	"github.com/arborwright/njtree/core"
	"github.com/arborwright/njtree/distmatrix"
)

// Build reconstructs an unrooted binary tree from dm by neighbor joining.
// It is the package's single entry point, mirroring prim_kruskal.Compute's
// one-dispatcher shape in the teacher pack.
//
// Complexity: O(n^3) total (O(|A|^2) per iteration, n-2 iterations), O(n^2)
// memory for the expanded matrix.
func Build(dm *distmatrix.DistanceMatrix, cfg Config) (*core.Tree, error) {
	if dm.N == 0 {
		return nil, ErrEmptyMatrix
	}

	labels := make([]string, dm.N)
	for i, l := range dm.Labels {
		labels[i] = string(l)
	}

	tree, err := core.NewTree(labels, dm.D)
	if err != nil {
		return nil, fmt.Errorf("njoin.Build: %w", err)
	}

	emit := cfg.Mode == Default && cfg.Sink != nil

	switch dm.N {
	case 1:
		return tree, nil
	case 2:
		return tree, joinFinalPair(tree, 0, 1, cfg, emit)
	}

	active := core.NewActiveSet(dm.N)

	for iter := 0; iter < dm.N-2; iter++ {
		if err := joinOnce(tree, active, cfg, emit); err != nil {
			return nil, err
		}
	}

	p, q := active.At(0), active.At(1)

	return tree, joinFinalPair(tree, p, q, cfg, emit)
}

// joinOnce performs one main-loop iteration: row sums, Q-selection, node
// synthesis, branch lengths, emission, adjacency, matrix update, and
// active-set update (spec §4.2 steps 1-8).
func joinOnce(tree *core.Tree, active *core.ActiveSet, cfg Config, emit bool) error {
	positions := active.Positions()
	m := len(positions)

	sums := rowSums(tree, positions)

	bestPi, bestPj := selectQPair(tree, positions, sums, m)
	f, g := positions[bestPi], positions[bestPj]

	u, err := tree.AddInternal()
	if err != nil {
		return fmt.Errorf("njoin.Build: %w: %w", ErrNodeLimitExceeded, err)
	}

	dfg := tree.Distance(f, g)
	lenF := dfg/2 + (sums[f]-sums[g])/(2*float64(m-2))
	lenG := dfg - lenF

	if emit {
		if err := cfg.Sink.Emit(f, u, lenF); err != nil {
			return fmt.Errorf("njoin.Build: edge sink: %w", err)
		}
		if err := cfg.Sink.Emit(g, u, lenG); err != nil {
			return fmt.Errorf("njoin.Build: edge sink: %w", err)
		}
	}

	if err := tree.SetChildren(u, f, g); err != nil {
		return fmt.Errorf("njoin.Build: %w", err)
	}

	// Record the new branch lengths in the expanded matrix, where the
	// renderers read each node's distance to its parent.
	tree.SetDistance(f, u, lenF)
	tree.SetDistance(g, u, lenG)

	for _, k := range positions {
		if k == f || k == g {
			continue
		}
		dk := (tree.Distance(f, k) + tree.Distance(g, k) - dfg) / 2
		tree.SetDistance(u, k, dk)
	}

	active.ReplaceAndRemove(f, g, u)

	return nil
}

// rowSums computes S[i] = sum over j in positions of d[i][j], for every i
// in positions (spec §4.2 step 1). Indexed by node index, not position, so
// callers look sums up directly by node index.
func rowSums(tree *core.Tree, positions []int) map[int]float64 {
	sums := make(map[int]float64, len(positions))
	for _, i := range positions {
		var s float64
		for _, j := range positions {
			if j == i {
				continue
			}
			s += tree.Distance(i, j)
		}
		sums[i] = s
	}

	return sums
}

// selectQPair finds the active-set position pair minimizing
// Q(i,j) = (m-2)*d(i,j) - S[i] - S[j], iterating positions in the pinned
// nested order "for pi, for pj >= pi, pi != pj" so the result is
// deterministic and reproducible across runs (spec §4.2 step 2).
func selectQPair(tree *core.Tree, positions []int, sums map[int]float64, m int) (int, int) {
	bestPi, bestPj := 0, 1
	bestQ := 0.0
	first := true

	for pi := 0; pi < m; pi++ {
		i := positions[pi]
		for pj := pi; pj < m; pj++ {
			if pi == pj {
				continue
			}
			j := positions[pj]
			q := float64(m-2)*tree.Distance(i, j) - sums[i] - sums[j]
			if first || q < bestQ {
				bestQ = q
				bestPi, bestPj = pi, pj
				first = false
			}
		}
	}

	return bestPi, bestPj
}

// joinFinalPair wires the last two surviving nodes directly together: no
// new internal node is synthesized (spec §4.2 "Final join").
func joinFinalPair(tree *core.Tree, p, q int, cfg Config, emit bool) error {
	length := tree.Distance(p, q)
	if emit {
		if err := cfg.Sink.Emit(p, q, length); err != nil {
			return fmt.Errorf("njoin.Build: edge sink: %w", err)
		}
	}

	if err := tree.LinkMutual(p, q); err != nil {
		return fmt.Errorf("njoin.Build: %w", err)
	}

	return nil
}
