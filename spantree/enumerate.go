// File: enumerate.go — Winter's recursive contract/delete algorithm and
// the channel-based lazy sequence it feeds (spec §5: workers pull
// candidates from this sequence; it never buffers the whole result set).
package spantree

import "context"

// Enumerate streams every spanning tree of the connected undirected
// multigraph (vertices, edges) over the returned channel, each exactly
// once, then closes it. The channel is drained lazily: values are
// produced only as fast as the caller receives them. Cancelling ctx
// stops production (the channel is still closed).
func Enumerate(ctx context.Context, vertices []int, edges []Edge) (<-chan Tree, error) {
	if len(vertices) == 0 {
		return nil, ErrTooFewVertices
	}

	out := make(chan Tree)
	go func() {
		defer close(out)
		enumerate(vertices, edges, nil, sendTo(ctx, out))
	}()

	return out, nil
}

// sendTo adapts a channel send into the emit callback shape, honouring
// ctx cancellation the way lvlath/dfs honours WithContext.
func sendTo(ctx context.Context, out chan<- Tree) func(Tree) bool {
	return func(t Tree) bool {
		select {
		case out <- t:
			return true
		case <-ctx.Done():
			return false
		}
	}
}

// enumerate implements steps 2-4 of Winter's algorithm on (vertices,
// edges), with groups the accumulated contracted-edge groups so far.
// emit is called once per completed spanning tree; returning false from
// emit aborts the remaining search.
func enumerate(vertices []int, edges []Edge, groups []group, emit func(Tree) bool) bool {
	if len(vertices) == 1 {
		return emitCombinations(groups, emit)
	}

	i := vertices[0]
	j := smallestNeighbour(edges, i)
	if j < 0 {
		// i has no incident edges: the input was disconnected. Winter's
		// algorithm assumes connectivity; nothing to emit on this path.
		return true
	}

	// Contract branch: collapse i into j.
	grp, rewritten := contract(edges, i, j)
	newGroups := append(append(make([]group, 0, len(groups)+1), groups...), grp)
	if !enumerate(vertices[1:], rewritten, newGroups, emit) {
		return false
	}

	// Delete branch: only if {i, j} is not a bridge.
	maskIdx := firstEdgeIndex(edges, i, j)
	if maskIdx >= 0 && !isBridge(edges, maskIdx, i, j) {
		remaining := withoutPair(edges, i, j)
		if !enumerate(vertices, remaining, groups, emit) {
			return false
		}
	}

	return true
}

// smallestNeighbour returns the smallest-labelled vertex adjacent to i
// via some edge, or -1 if i has no incident edges.
func smallestNeighbour(edges []Edge, i int) int {
	j := -1
	for _, e := range edges {
		other, touches := otherEndpoint(e, i)
		if touches && (j == -1 || other < j) {
			j = other
		}
	}
	return j
}

func otherEndpoint(e Edge, i int) (int, bool) {
	switch {
	case e.A == i:
		return e.B, true
	case e.B == i:
		return e.A, true
	default:
		return 0, false
	}
}

// contract removes vertex i, rewriting every {i,k} edge (k != j) as
// {min(j,k),max(j,k)}, and collects every {i,j} edge's label into a
// group. Edges untouched by i pass through unchanged.
func contract(edges []Edge, i, j int) (group, []Edge) {
	var grp group
	rewritten := make([]Edge, 0, len(edges))
	for _, e := range edges {
		other, touches := otherEndpoint(e, i)
		switch {
		case !touches:
			rewritten = append(rewritten, e)
		case other == j:
			grp = append(grp, e.Label)
		default:
			a, b := j, other
			if a > b {
				a, b = b, a
			}
			rewritten = append(rewritten, Edge{Label: e.Label, A: a, B: b})
		}
	}
	return grp, rewritten
}

func firstEdgeIndex(edges []Edge, i, j int) int {
	for idx, e := range edges {
		if isPair(e, i, j) {
			return idx
		}
	}
	return -1
}

func withoutPair(edges []Edge, i, j int) []Edge {
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !isPair(e, i, j) {
			out = append(out, e)
		}
	}
	return out
}

func isPair(e Edge, i, j int) bool {
	return (e.A == i && e.B == j) || (e.A == j && e.B == i)
}

// emitCombinations enumerates the Cartesian product of groups, emitting
// one Tree per combination. A single-vertex graph (groups == nil)
// emits exactly one empty Tree.
func emitCombinations(groups []group, emit func(Tree) bool) bool {
	chosen := make(Tree, len(groups))
	var rec func(idx int) bool
	rec = func(idx int) bool {
		if idx == len(groups) {
			out := make(Tree, len(chosen))
			copy(out, chosen)
			return emit(out)
		}
		for _, label := range groups[idx] {
			chosen[idx] = label
			if !rec(idx + 1) {
				return false
			}
		}
		return true
	}
	return rec(0)
}
