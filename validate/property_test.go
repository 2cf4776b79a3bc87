package validate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/netshape"
	"github.com/boxnets/netfold/spantree"
	"github.com/boxnets/netfold/validate"
)

// TestScoreInvariantUnderDihedralTransform checks spec §8 invariant 4:
// applying any of the 8 dihedral symmetries to a bitmap before
// validation does not change D's result. Uses a reimplementation of
// rotate/mirror independent of netshape's internals, against a handful
// of real spanning-tree unfoldings (a mix of overlapping and clean
// ones).
func TestScoreInvariantUnderDihedralTransform(t *testing.T) {
	dims := []boxgraph.Dimensions{
		{L: 1, H: 1, D: 1},
		{L: 1, H: 1, D: 4},
	}

	for _, dim := range dims {
		g, err := boxgraph.Build(dim)
		require.NoError(t, err)

		vertices, edges := spantree.FromBoxGraph(g)
		ch, err := spantree.Enumerate(context.Background(), vertices, edges)
		require.NoError(t, err)

		checked := 0
		for tree := range ch {
			if checked >= 5 {
				continue
			}
			resolved := spantree.Resolve(edges, tree)
			raw := netshape.Materialise(g.Faces, resolved)

			want := validate.Score(raw, g.Faces)
			for i, variant := range dihedralOrbit(raw) {
				got := validate.Score(variant, g.Faces)
				require.Equal(t, want, got, "dim=%v tree=%v orbit member %d", dim, tree, i)
			}
			checked++
		}
	}
}

func dihedralOrbit(b netshape.Bitmap) []netshape.Bitmap {
	orbit := make([]netshape.Bitmap, 0, 8)
	cur := b
	for i := 0; i < 4; i++ {
		orbit = append(orbit, cur)
		cur = rotateClockwise(cur)
	}
	cur = mirrorHorizontal(b)
	for i := 0; i < 4; i++ {
		orbit = append(orbit, cur)
		cur = rotateClockwise(cur)
	}
	return orbit
}

func rotateClockwise(b netshape.Bitmap) netshape.Bitmap {
	out := netshape.Bitmap{Rows: b.Cols, Cols: b.Rows}
	out.Cells = make([][]int, out.Rows)
	for c := 0; c < b.Cols; c++ {
		out.Cells[c] = make([]int, b.Rows)
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			out.Cells[c][b.Rows-1-r] = b.Cells[r][c]
		}
	}
	return out
}

func mirrorHorizontal(b netshape.Bitmap) netshape.Bitmap {
	out := netshape.Bitmap{Rows: b.Rows, Cols: b.Cols}
	out.Cells = make([][]int, b.Rows)
	for r := 0; r < b.Rows; r++ {
		out.Cells[r] = make([]int, b.Cols)
		for c := 0; c < b.Cols; c++ {
			out.Cells[r][c] = b.Cells[r][b.Cols-1-c]
		}
	}
	return out
}
