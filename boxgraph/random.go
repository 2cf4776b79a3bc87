// File: random.go — face relabelling permutation (spec §4.A Randomisation).
package boxgraph

import "math/rand"

// randomise applies a uniform random permutation pi of [0, F) to g's face
// labels: the face originally at local index i is renamed pi(i), and its
// neighbour tuple (u, r, d, l) becomes (pi(u), pi(r), pi(d), pi(l)). The
// edge set is rebuilt from the permuted tuples. The result is isomorphic
// to g; only the enumeration order of a subsequent spantree walk differs.
func randomise(g *Graph, rng *rand.Rand) *Graph {
	n := len(g.Faces)
	perm := rng.Perm(n)

	relabelled := make([]Face, n)
	for i, face := range g.Faces {
		var nf Face
		for d := 0; d < numDirections; d++ {
			nf.Neighbors[d] = perm[face.Neighbors[d]]
		}
		relabelled[perm[i]] = nf
	}

	edges := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		a, b := perm[e.A], perm[e.B]
		if a > b {
			a, b = b, a
		}
		edges = append(edges, Edge{A: a, B: b})
	}

	return &Graph{Dim: g.Dim, Faces: relabelled, Edges: edges}
}
