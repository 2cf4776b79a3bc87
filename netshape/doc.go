// Package netshape implements Component C: unfolding a spanning tree of a
// box's surface graph onto a 2-D bitmap, then reducing that bitmap to the
// lexicographically smallest representative of its dihedral (D4) orbit.
//
// Grounded on lvlath/gridgraph's deep-copied rectangular cell grid and on
// lvlath/dfs's recursive visit-with-reorientation shape, generalised here
// from graph traversal to the box-unfolding walk.
package netshape
