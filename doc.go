// Package njtree reconstructs an unrooted binary phylogenetic tree from a
// pairwise genetic-distance matrix using the neighbor-joining (NJ) method
// of Saitou & Nei.
//
// Given a symmetric distance matrix over N taxa, njtree produces either:
//   - a stream of edge descriptions for the inferred tree,
//   - the full synthesized distance matrix (leaves plus internal nodes), or
//   - a Newick-format rooted tree obtained by designating an outlier leaf.
//
// Under the hood, everything is organized under four subpackages:
//
//	core/       — Node, Tree, ActiveSet: owned, index-addressed NJ state
//	distmatrix/ — DistanceMatrix type and the strict CSV matrix parser
//	njoin/      — the neighbor-joining reconstruction engine
//	render/     — matrix, Newick, and edge-stream output renderers
//
// cmd/njtree ships these as a single binary with three subcommands:
// build, matrix, and newick.
//
//	go get github.com/arborwright/njtree
package njtree
