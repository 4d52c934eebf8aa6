// SPDX-License-Identifier: MIT
// File: newick.go
// Role: depth-first Newick serialization, adapted from the teacher pack's
// dfs walker shape (dfsWalker.traverse) to walk core.Tree adjacency
// instead of core.Graph neighbor lists, excluding the direction back
// toward whichever neighbor counts as "parent" rather than tracking a
// separate visited set — a tree has no cycles to guard against.
package newick

import (
	"fmt"
	"io"
	"strings"

	"github.com/arborwright/njtree/core"
)

// Render writes a rooted Newick representation of tree to w, excluding
// the outlier leaf designated by outlierName (or, if empty, the leaf
// selected per SelectOutlier's row-sum rule).
//
// Complexity: O(NumAllNodes).
func Render(w io.Writer, tree *core.Tree, outlierName string) error {
	if tree.NumTaxa == 1 {
		_, err := fmt.Fprintf(w, "%s;", tree.Nodes[0].Name)
		return err
	}

	outlier, err := SelectOutlier(tree, outlierName)
	if err != nil {
		return err
	}

	if tree.NumTaxa == 2 {
		other := 1 - outlier
		_, err := fmt.Fprintf(w, "%s;", tree.Nodes[other].Name)
		return err
	}

	root := tree.Nodes[outlier].Neighbors[0].Index
	children := childrenOf(tree, root, outlier)

	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = renderSubtree(tree, c, root)
	}

	_, err = fmt.Fprintf(w, "(%s);", strings.Join(parts, ","))

	return err
}

// renderSubtree renders nodeIdx and everything beneath it (in the rooted
// sense defined by parent), suffixed with its own branch length to parent.
func renderSubtree(tree *core.Tree, nodeIdx, parent int) string {
	children := childrenOf(tree, nodeIdx, parent)

	var body string
	if len(children) == 0 {
		body = tree.Nodes[nodeIdx].Name
	} else {
		parts := make([]string, len(children))
		for i, c := range children {
			parts[i] = renderSubtree(tree, c, nodeIdx)
		}
		body = "(" + strings.Join(parts, ",") + ")"
	}

	return fmt.Sprintf("%s:%.2f", body, tree.Distance(nodeIdx, parent))
}

// childrenOf returns nodeIdx's Present neighbors other than exclude, in
// slot order 1, 2, 0 (the node's own join children first, then its slot-0
// neighbor) — the rooted-tree "children" of nodeIdx when arriving from
// exclude (its parent, or the outlier when nodeIdx is the root).
func childrenOf(tree *core.Tree, nodeIdx, exclude int) []int {
	var out []int
	nbs := tree.Nodes[nodeIdx].Neighbors
	for _, nb := range [3]core.NodeRef{nbs[1], nbs[2], nbs[0]} {
		if nb.Present && nb.Index != exclude {
			out = append(out, nb.Index)
		}
	}

	return out
}
