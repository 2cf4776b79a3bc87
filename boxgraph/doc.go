// Package boxgraph builds the 4-regular surface adjacency graph of a
// rectangular box (L, H, D): an ordered list of faces, each carrying a
// clockwise (as viewed from outside the box) 4-tuple of neighbour indices,
// plus the unordered edge set those tuples imply.
//
// What:
//
//   - Build lays out the six rectangular sub-surfaces (TOP, FRONT, BOTTOM,
//     BACK, LEFT, RIGHT) as unit-square cells and wires every cell's
//     (up, right, down, left) neighbour via either in-plane arithmetic or
//     one of the twelve seam rules that stitch the sub-surfaces into a
//     single closed surface.
//   - WithRandomise relabels every face index through a permutation,
//     preserving the graph's isomorphism class while randomising the
//     order component B's enumeration visits spanning trees in.
//
// Why:
//
//   - spantree walks this graph's Edges to enumerate spanning trees.
//   - netshape walks a spanning tree's Faces to unfold a net bitmap.
//   - validate deep-clones a target box's Faces to fold-search a bitmap.
//
// Complexity:
//
//   - Build: O(F) time and memory, F = 2(LD+LH+DH).
//   - WithRandomise: additional O(F) time for the permutation and edge
//     rebuild.
//
// Errors:
//
//   - ErrInvalidDimensions: any of L, H, D is less than 1.
package boxgraph
