// Package njoin implements the neighbor-joining tree reconstruction engine:
// iterative Q-matrix minimization over an active set of node indices,
// synthesizing one internal node per iteration until two nodes remain.
//
// Build is the package's single entry point, mirroring the teacher pack's
// prim_kruskal.Compute dispatcher shape: it consumes a *distmatrix.DistanceMatrix
// and a Config, and returns a fully linked *core.Tree.
//
// The algorithm, verbatim from the reference procedure:
//
//	for |A| > 2:
//	  1. row sums S[i] over i in A
//	  2. Q(i,j) = (|A|-2)*d(i,j) - S[i] - S[j], minimized over unordered pairs,
//	     tie-broken by nested iteration order over A's current positions
//	  3. synthesize internal node u
//	  4. branch lengths len(f,u), len(g,u) from d(f,g) and the row sums,
//	     stored as d[f][u] and d[g][u]
//	  5. emit (f,u,len) then (g,u,len) to the configured EdgeSink, if any
//	  6. wire adjacency: u's children are f and g; f and g's parent slot is u
//	  7. update d[u][k] for every remaining active k
//	  8. replace f with u in the active set, swap-remove g
//	final join: the last two survivors are joined directly, no new node.
package njoin
