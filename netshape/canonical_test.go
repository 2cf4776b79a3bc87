package netshape_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxnets/netfold/netshape"
)

func gridOf(rows [][]int) netshape.Bitmap {
	b := netshape.Bitmap{Rows: len(rows), Cols: 0}
	if len(rows) > 0 {
		b.Cols = len(rows[0])
	}
	b.Cells = rows
	return b
}

// TestCanonicalizeTrimsZeroBorder checks that an all-zero border is
// removed before the dihedral search runs.
func TestCanonicalizeTrimsZeroBorder(t *testing.T) {
	b := gridOf([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	})
	c := netshape.Canonicalize(b)
	require.Equal(t, 2, c.Rows)
	require.Equal(t, 2, c.Cols)
}

// TestCanonicalizeIsIdempotent checks that canonicalising an already
// canonical bitmap returns the same bitmap.
func TestCanonicalizeIsIdempotent(t *testing.T) {
	b := gridOf([][]int{
		{1, 0},
		{1, 1},
	})
	c := netshape.Canonicalize(b)
	c2 := netshape.Canonicalize(c)
	require.Equal(t, c.Cells, c2.Cells)
}

// TestCanonicalizeOrbitAgreement checks that every one of the 8 dihedral
// transforms of a bitmap canonicalises to the same representative (spec
// §8 invariant 4's bitmap-level analogue for C).
func TestCanonicalizeOrbitAgreement(t *testing.T) {
	base := gridOf([][]int{
		{1, 1, 0},
		{0, 1, 1},
	})

	want := netshape.Canonicalize(base)

	orbit := allEightVariants(base)
	for i, variant := range orbit {
		got := netshape.Canonicalize(variant)
		require.Equal(t, want.Cells, got.Cells, "orbit member %d disagrees", i)
	}
}

// allEightVariants reproduces the 8-element dihedral orbit by hand
// (independent of netshape's internal rotate/mirror helpers) so the test
// doesn't just check the implementation against itself.
func allEightVariants(b netshape.Bitmap) []netshape.Bitmap {
	rotations := make([]netshape.Bitmap, 0, 8)
	cur := b
	for i := 0; i < 4; i++ {
		rotations = append(rotations, cur)
		cur = rotateClockwise(cur)
	}
	mirrored := mirrorHorizontal(b)
	cur = mirrored
	for i := 0; i < 4; i++ {
		rotations = append(rotations, cur)
		cur = rotateClockwise(cur)
	}
	return rotations
}

func rotateClockwise(b netshape.Bitmap) netshape.Bitmap {
	out := gridOf(make([][]int, b.Cols))
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
	out := gridOf(make([][]int, b.Rows))
	for r := 0; r < b.Rows; r++ {
		out.Cells[r] = make([]int, b.Cols)
		for c := 0; c < b.Cols; c++ {
			out.Cells[r][c] = b.Cells[r][b.Cols-1-c]
		}
	}
	return out
}
