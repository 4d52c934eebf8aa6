// SPDX-License-Identifier: MIT
// File: active_set.go
// Role: the mutable sequence of node indices still eligible to be joined.
package core

// ActiveSet is a compact, order-preserving sequence of node indices.
//
// The neighbor-joining loop's Q-selection tie-break (spec: "first pair
// encountered in nested iteration order") is defined in terms of this
// sequence's current order, so ActiveSet exposes that order directly via
// Positions rather than hiding it behind a set abstraction.
//
// Complexity: Positions is O(1) (returns the live backing slice's indices
// by value via a fresh copy is NOT performed — callers must not retain the
// slice across a mutating call). ReplaceAndRemove is O(n) for the swap-remove
// scan; n is bounded by the number of taxa.
type ActiveSet struct {
	ids []int
}

// NewActiveSet builds the initial active set [0, n).
// Complexity: O(n).
func NewActiveSet(n int) *ActiveSet {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return &ActiveSet{ids: ids}
}

// Len returns the number of currently active node indices.
func (a *ActiveSet) Len() int { return len(a.ids) }

// At returns the node index at the given position (0-based, in current order).
func (a *ActiveSet) At(pos int) int { return a.ids[pos] }

// Positions returns the active indices in their current order. The
// returned slice aliases ActiveSet's internal storage and must be treated
// as read-only; it is only valid until the next mutating call.
func (a *ActiveSet) Positions() []int { return a.ids }

// ReplaceAndRemove implements one neighbor-joining iteration's active-set
// update: the joined pair (f, g) leaves the set and the new internal node u
// enters it, equivalent to "replace f with u in place, then swap-remove g".
//
// Implementation:
//  1. Find f's position and overwrite it with u — u inherits f's slot, so
//     every position to u's right that used to follow f now follows u.
//  2. Find g's position and swap-remove it: move the last element into g's
//     slot and shrink the slice by one.
//
// This exact two-step order (not e.g. "remove both, then append") is what
// makes the next iteration's tie-break order reproducible across
// implementations, matching the reference algorithm.
func (a *ActiveSet) ReplaceAndRemove(f, g, u int) {
	fPos := a.indexOf(f)
	a.ids[fPos] = u

	gPos := a.indexOf(g)
	last := len(a.ids) - 1
	a.ids[gPos] = a.ids[last]
	a.ids = a.ids[:last]
}

// indexOf scans for the position of the given node index. Active sets are
// small (bounded by the taxon count), so a linear scan is simplest and
// matches the O(|A|) per-iteration bookkeeping cost already paid elsewhere
// in the loop.
func (a *ActiveSet) indexOf(nodeIdx int) int {
	for pos, id := range a.ids {
		if id == nodeIdx {
			return pos
		}
	}
	return -1
}
