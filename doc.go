// Package netfold enumerates and searches for common unfoldings (nets)
// of two or more rectangular boxes.
//
// Given an ordered list of box dimensions (L, H, D), netfold produces
// planar polyomino shapes that fold, without overlap or gaps, onto the
// surface of every supplied box simultaneously. Two entry points drive
// the search:
//
//	cmd/netfold-all — exhaustive mode: emit every common net
//	cmd/netfold-one — heuristic mode: randomised search for one common net
//
// The algorithmic core is four packages, leaves-first:
//
//	boxgraph/ — builds a box's 4-regular surface adjacency graph
//	spantree/ — enumerates every spanning tree of that graph (Winter's algorithm)
//	netshape/ — unfolds a spanning tree into a canonical 2-D bitmap
//	validate/ — scores a bitmap against a target box's face graph
//
// worker/ composes these into the shared-nothing fan-out described in
// DESIGN.md; config/ and resultio/ are the thin CLI-facing collaborators
// around them.
package netfold
