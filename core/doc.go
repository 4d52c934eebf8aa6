// Package core defines the node-table representation shared by the
// neighbor-joining engine and its renderers: Node, Tree, and ActiveSet.
//
// Everywhere the original algorithm used raw pointers and a handful of
// process-wide arrays, this package owns the data instead: Tree.Nodes is a
// single slice, preallocated to the final node count and indexed by node
// index, Tree.D is the expanded
// distance matrix (also index-addressed), and ActiveSet is a compact,
// mutable sequence of node indices. Cross-references between nodes
// (parent, children) are plain indices wrapped in NodeRef — a tagged
// "optional index" — never aliased pointers.
//
// Lifecycle:
//
//	NewTree(labels, d) allocates a Tree sized for the final node count and
//	pre-fills the n leaf nodes from labels/d. The neighbor-joining engine
//	(package njoin) then mutates Nodes, D, and a companion ActiveSet
//	monotonically — synthesizing internal nodes, updating distances, and
//	shrinking the active set — until exactly one unresolved pair remains.
//	Once Build returns, the Tree is read-only; renderers (package render)
//	are strict readers.
//
// Node naming:
//
//	Leaf names come from the input labels verbatim. Internal nodes are
//	named "#<index>" where index is that node's position in Nodes — this
//	convention is retained because it is part of the edge-stream output
//	contract, not merely an implementation detail.
package core
