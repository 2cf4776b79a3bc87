package resultio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxnets/netfold/netshape"
	"github.com/boxnets/netfold/resultio"
)

// TestRenderCubeCross checks the classic cube "+"-shape net from spec §8
// scenario 1 renders with the documented convention.
func TestRenderCubeCross(t *testing.T) {
	b := netshape.Bitmap{
		Rows: 4,
		Cols: 3,
		Cells: [][]int{
			{0, 1, 0},
			{1, 1, 1},
			{0, 1, 0},
			{0, 1, 0},
		},
	}
	want := "  []  \n[][][]\n  []  \n  []  "
	require.Equal(t, want, resultio.Render(b))
}

func TestRenderOverlap(t *testing.T) {
	b := netshape.Bitmap{Rows: 1, Cols: 2, Cells: [][]int{{2, 0}}}
	require.Equal(t, "[2  ", resultio.Render(b))
}

func TestRenderEmpty(t *testing.T) {
	require.Equal(t, "", resultio.Render(netshape.Bitmap{}))
}
