package netshape

import "github.com/boxnets/netfold/boxgraph"

// Unfold materialises tree over faces and returns its canonical bitmap
// in one call; the composition worker uses for every candidate spanning
// tree pulled from spantree.
func Unfold(faces []boxgraph.Face, tree []boxgraph.Edge) Bitmap {
	return Canonicalize(Materialise(faces, tree))
}
