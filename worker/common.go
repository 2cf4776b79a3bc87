package worker

import "github.com/boxnets/netfold/boxgraph"

// checkAreas reports ErrAreaMismatch unless source and every target
// share the same face count (spec §6: "all triples must have equal
// surface area F; mismatched areas are a configuration error").
func checkAreas(source boxgraph.Dimensions, targets []boxgraph.Dimensions) error {
	f := source.Faces()
	for _, t := range targets {
		if t.Faces() != f {
			return ErrAreaMismatch
		}
	}
	return nil
}

// buildGraphs builds one box graph per target dimension.
func buildGraphs(dims []boxgraph.Dimensions) ([]*boxgraph.Graph, error) {
	out := make([]*boxgraph.Graph, len(dims))
	for i, dim := range dims {
		g, err := boxgraph.Build(dim)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}

// cloneGraphs deep-clones each target graph's face list, giving a
// worker goroutine its own copy to pass into validate (spec §5: "each
// holding its own deep copy of target face lists").
func cloneGraphs(graphs []*boxgraph.Graph) []*boxgraph.Graph {
	out := make([]*boxgraph.Graph, len(graphs))
	for i, g := range graphs {
		clone := *g
		clone.Faces = boxgraph.CloneFaces(g.Faces)
		out[i] = &clone
	}
	return out
}
