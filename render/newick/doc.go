// Package newick serializes a built core.Tree as a rooted Newick string
// by designating one leaf as an outlier, rooting at its sole neighbor, and
// walking the tree depth-first in the teacher pack's dfs-walker shape
// (explicit parent-exclusion instead of a visited set, since a tree has no
// cycles to guard against).
//
// Per spec §4.4: the outlier is never part of the emitted tree; its edge
// length is discarded. The root itself carries no printed length (a root
// has no parent). Edge lengths elsewhere are the node-to-parent distance,
// formatted %.2f.
package newick
