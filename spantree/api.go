// File: api.go — conversion between boxgraph's box surface graph and
// spantree's generic vertex/edge representation.
package spantree

import "github.com/boxnets/netfold/boxgraph"

// FromBoxGraph converts a box surface graph into the (vertices, edges)
// pair Enumerate consumes. Box graphs carry no parallel edges, so each
// Edge's Label is simply its position in g.Edges.
func FromBoxGraph(g *boxgraph.Graph) ([]int, []Edge) {
	vertices := make([]int, len(g.Faces))
	for i := range vertices {
		vertices[i] = i
	}

	edges := make([]Edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = Edge{Label: EdgeLabel(i), A: e.A, B: e.B}
	}

	return vertices, edges
}

// Resolve maps a Tree's edge labels back to their {A,B} endpoints,
// against the same edges slice a Tree was produced from.
func Resolve(edges []Edge, tree Tree) []boxgraph.Edge {
	byLabel := make(map[EdgeLabel]Edge, len(edges))
	for _, e := range edges {
		byLabel[e.Label] = e
	}

	out := make([]boxgraph.Edge, len(tree))
	for i, label := range tree {
		e := byLabel[label]
		out[i] = boxgraph.Edge{A: e.A, B: e.B}
	}
	return out
}
