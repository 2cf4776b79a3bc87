// File: materialise.go — the unfolding walk (spec §4.C): starting from
// face 0 at the centre of a 2F x 2F grid, follow the spanning tree's
// edges outward, re-orienting each newly visited face's neighbour tuple
// so its back-link to the face it was reached from faces the opposite
// direction.
package netshape

import "github.com/boxnets/netfold/boxgraph"

// delta is the row/col offset for each clockwise direction
// (Up, Right, Down, Left), matching boxgraph's direction constants.
var delta = [4][2]int{
	{-1, 0}, // Up
	{0, 1},  // Right
	{1, 0},  // Down
	{0, -1}, // Left
}

// Materialise unfolds the spanning tree (a set of face-index pairs) over
// faces, a source box's face list, into a Bitmap. It never fails: faces
// and tree are assumed to come from a connected box graph and one of its
// own spanning trees (see spantree.Resolve).
func Materialise(faces []boxgraph.Face, tree []boxgraph.Edge) Bitmap {
	size := 2 * len(faces)
	if size == 0 {
		return Bitmap{}
	}

	working := boxgraph.CloneFaces(faces)
	inTree := treeMembership(tree)
	grid := newBitmap(size, size)
	visited := make([]bool, len(faces))

	center := len(faces)
	walk(0, center, center, working, inTree, grid, visited)

	return grid
}

// walk places face at (row, col), marks it visited, increments the
// target cell, then recurses into every unvisited neighbour reachable by
// a tree edge.
func walk(face, row, col int, faces []boxgraph.Face, inTree map[[2]int]bool, grid Bitmap, visited []bool) {
	visited[face] = true
	grid.Cells[row][col]++

	f := faces[face]
	for d := 0; d < 4; d++ {
		nbr := f.Neighbors[d]
		if visited[nbr] || !inTree[pairKey(face, nbr)] {
			continue
		}
		nr, nc := row+delta[d][0], col+delta[d][1]

		back := (d + 2) % 4
		if !faces[nbr].OrientToward(face, back) {
			// A correct box graph never reaches this: nbr's tuple must
			// contain face, since the edge {face, nbr} exists by
			// construction. Surfacing it as a panic makes a broken
			// graph builder fail loudly instead of silently
			// mis-folding.
			panic("netshape: face graph invariant violated: neighbour missing back-link")
		}

		walk(nbr, nr, nc, faces, inTree, grid, visited)
	}
}

func treeMembership(tree []boxgraph.Edge) map[[2]int]bool {
	set := make(map[[2]int]bool, len(tree)*2)
	for _, e := range tree {
		set[pairKey(e.A, e.B)] = true
		set[pairKey(e.B, e.A)] = true
	}
	return set
}

func pairKey(a, b int) [2]int {
	return [2]int{a, b}
}
