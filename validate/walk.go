// File: walk.go — the fold-search recursive walk (spec §4.D): for a
// fixed starting cell and starting rotation, follows the target box's
// face adjacency across the bitmap, counting overlaps and coverage.
package validate

import (
	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/netshape"
)

var delta = [4][2]int{
	{-1, 0}, // Up
	{0, 1},  // Right
	{1, 0},  // Down
	{0, -1}, // Left
}

// foldAttempt runs one (start, rotation) fold-search walk and reports
// its overlap count and face-coverage count.
func foldAttempt(n netshape.Bitmap, faces []boxgraph.Face, startRow, startCol, rotation int) attemptResult {
	working := boxgraph.CloneFaces(faces)

	if len(working) > 0 {
		origNeighbour0 := faces[0].Neighbors[0]
		working[0].OrientToward(origNeighbour0, rotation)
	}

	visitedFace := make([]bool, len(working))
	visitedPos := make(map[[2]int]bool, n.Rows*n.Cols)
	res := attemptResult{}

	var fold func(face, row, col int)
	fold = func(face, row, col int) {
		visitedPos[[2]int{row, col}] = true
		if visitedFace[face] {
			res.overlaps++
		} else {
			visitedFace[face] = true
			res.visited++
		}

		f := working[face]
		for d := 0; d < 4; d++ {
			nbr := f.Neighbors[d]
			nr, nc := row+delta[d][0], col+delta[d][1]
			if !n.InBounds(nr, nc) || n.At(nr, nc) == 0 {
				continue
			}
			if visitedPos[[2]int{nr, nc}] {
				continue
			}
			back := (d + 2) % 4
			if !working[nbr].OrientToward(face, back) {
				panic("validate: face graph invariant violated: neighbour missing back-link")
			}
			fold(nbr, nr, nc)
		}
	}

	fold(0, startRow, startCol)
	return res
}
