package spantree_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxnets/netfold/spantree"
)

func drain(t *testing.T, vertices []int, edges []spantree.Edge) []spantree.Tree {
	t.Helper()
	ch, err := spantree.Enumerate(context.Background(), vertices, edges)
	require.NoError(t, err)
	var trees []spantree.Tree
	for tree := range ch {
		trees = append(trees, tree)
	}
	return trees
}

// TestEnumerateTriangle hand-checks K3: 3 vertices, 3 edges, exactly 3
// spanning trees (Kirchhoff: det of any cofactor of the Laplacian is 3).
func TestEnumerateTriangle(t *testing.T) {
	vertices := []int{0, 1, 2}
	edges := []spantree.Edge{
		{Label: 0, A: 0, B: 1},
		{Label: 1, A: 1, B: 2},
		{Label: 2, A: 0, B: 2},
	}
	trees := drain(t, vertices, edges)
	require.Len(t, trees, 3)
	assertDistinct(t, trees)
	for _, tr := range trees {
		require.Len(t, tr, 2)
	}
}

// TestEnumerateSquare hand-checks C4 (a 4-cycle): 4 spanning trees, each
// omitting exactly one of the 4 edges.
func TestEnumerateSquare(t *testing.T) {
	vertices := []int{0, 1, 2, 3}
	edges := []spantree.Edge{
		{Label: 0, A: 0, B: 1},
		{Label: 1, A: 1, B: 2},
		{Label: 2, A: 2, B: 3},
		{Label: 3, A: 0, B: 3},
	}
	trees := drain(t, vertices, edges)
	require.Len(t, trees, 4)
	assertDistinct(t, trees)
}

// TestEnumerateParallelEdges exercises the multi-edge group path: two
// vertices joined by 3 parallel edges have exactly 3 spanning trees
// (each a single edge), and a path of two parallel-edge pairs multiplies.
func TestEnumerateParallelEdges(t *testing.T) {
	vertices := []int{0, 1}
	edges := []spantree.Edge{
		{Label: 0, A: 0, B: 1},
		{Label: 1, A: 0, B: 1},
		{Label: 2, A: 0, B: 1},
	}
	trees := drain(t, vertices, edges)
	require.Len(t, trees, 3)
	for _, tr := range trees {
		require.Len(t, tr, 1)
	}
	assertDistinct(t, trees)

	// Path 0-1-2 with each link doubled: 2 * 2 = 4 spanning trees.
	vertices = []int{0, 1, 2}
	edges = []spantree.Edge{
		{Label: 0, A: 0, B: 1},
		{Label: 1, A: 0, B: 1},
		{Label: 2, A: 1, B: 2},
		{Label: 3, A: 1, B: 2},
	}
	trees = drain(t, vertices, edges)
	require.Len(t, trees, 4)
	for _, tr := range trees {
		require.Len(t, tr, 2)
	}
	assertDistinct(t, trees)
}

func TestEnumerateSingleVertex(t *testing.T) {
	trees := drain(t, []int{0}, nil)
	require.Len(t, trees, 1)
	require.Empty(t, trees[0])
}

func TestEnumerateNoVertices(t *testing.T) {
	_, err := spantree.Enumerate(context.Background(), nil, nil)
	require.ErrorIs(t, err, spantree.ErrTooFewVertices)
}

func TestEnumerateCancellation(t *testing.T) {
	vertices := []int{0, 1, 2, 3}
	edges := []spantree.Edge{
		{Label: 0, A: 0, B: 1},
		{Label: 1, A: 1, B: 2},
		{Label: 2, A: 2, B: 3},
		{Label: 3, A: 0, B: 3},
		{Label: 4, A: 0, B: 2},
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := spantree.Enumerate(ctx, vertices, edges)
	require.NoError(t, err)

	<-ch
	cancel()
	for range ch {
		// drain until the producer observes cancellation and closes out.
	}
}

func assertDistinct(t *testing.T, trees []spantree.Tree) {
	t.Helper()
	seen := map[string]bool{}
	for _, tr := range trees {
		key := treeKey(tr)
		require.False(t, seen[key], "duplicate spanning tree emitted: %v", tr)
		seen[key] = true
	}
}

func treeKey(tr spantree.Tree) string {
	sorted := append(spantree.Tree(nil), tr...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	key := ""
	for _, label := range sorted {
		key += string(rune(label)) + ","
	}
	return key
}
