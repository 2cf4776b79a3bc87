package spantree

import "errors"

// ErrTooFewVertices indicates an empty vertex list; a spanning tree is
// undefined for zero vertices.
var ErrTooFewVertices = errors.New("spantree: at least one vertex is required")

// EdgeLabel is the stable identity of an edge, carried unchanged through
// every contraction.
type EdgeLabel int

// Edge is one element of the input multigraph's edge multiset. Label
// need not be related to A/B; two Edge values with the same (A, B) but
// different Label are parallel edges.
type Edge struct {
	Label EdgeLabel
	A, B  int
}

// Tree is one spanning tree, as the list of edge labels forming it.
// len(Tree) == |V| - 1.
type Tree []EdgeLabel

// group is the set of parallel edges contracted together at one step of
// the recursion; size > 1 only when A and B are joined by multiple
// edges in the input multigraph.
type group []EdgeLabel
