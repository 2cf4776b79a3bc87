// Package spantree enumerates every spanning tree of a connected
// undirected multigraph exactly once, using Winter's recursive
// contract/delete algorithm.
//
// What:
//
//   - Enumerate walks the recursion described below and streams each
//     spanning tree, as a slice of edge labels, over a channel.
//   - The bridge test that gates the delete branch is a masked-edge
//     reachability search (the spantree analogue of lvlath/dfs's
//     traversal, restricted to a single edge instance).
//
// Algorithm (Winter):
//
//  1. If |V| == 1, the accumulated edge-label groups fully determine a
//     slice of spanning trees: the Cartesian product over the groups.
//  2. Let i be the first vertex in V, j the smallest-labelled vertex
//     adjacent to i.
//  3. Contract branch: remove i, rewrite every {i,k} (k != j) edge as
//     {min(j,k),max(j,k)} keeping its label, collect the {i,j} edges'
//     labels into a new group, recurse with the group appended.
//  4. Delete branch: if {i,j} is not a bridge, remove every {i,j} edge
//     and recurse with V and the accumulator unchanged.
//
// Multi-edge handling: a recursion leaf's groups may have size > 1 when
// the graph has parallel edges; each element of the Cartesian product is
// a distinct spanning tree. Box graphs have no parallel edges in
// practice, so every group has size 1, but Enumerate handles the general
// case.
//
// Complexity: recursion depth up to |V| + |E|; each leaf's Cartesian
// product is O(prod(|group|)) in the worst case, bounded in practice by
// the absence of parallel edges.
package spantree
