// File: exhaustive.go — the exhaustive-mode fan-out (spec §5): a fixed
// pool of workers range over a single shared channel of spanning trees,
// each validating its own candidate against deep-cloned target graphs
// and emitting every common net exactly once.
package worker

import (
	"context"
	"sync"

	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/config"
	"github.com/boxnets/netfold/netshape"
	"github.com/boxnets/netfold/spantree"
	"github.com/boxnets/netfold/validate"
)

// RunExhaustive enumerates every spanning tree of source, unfolds and
// canonicalises each into a bitmap, and calls emit once for every
// distinct bitmap that validates against every target. emit may be
// called concurrently from multiple workers; callers whose emit is not
// itself safe for concurrent use should synchronise inside it (see
// resultio.Writer, which already does).
func RunExhaustive(ctx context.Context, source boxgraph.Dimensions, targets []boxgraph.Dimensions, cfg config.Config, emit func(Candidate)) error {
	if err := checkAreas(source, targets); err != nil {
		return err
	}

	srcGraph, err := boxgraph.Build(source)
	if err != nil {
		return err
	}
	targetGraphs, err := buildGraphs(targets)
	if err != nil {
		return err
	}

	vertices, edges := spantree.FromBoxGraph(srcGraph)
	trees, err := spantree.Enumerate(ctx, vertices, edges)
	if err != nil {
		return err
	}

	dedup := newDeduper(cfg.Dedup)

	workers := cfg.Processes
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			myTargets := cloneGraphs(targetGraphs)

			for tree := range trees {
				resolved := spantree.Resolve(edges, tree)
				bitmap := netshape.Unfold(srcGraph.Faces, resolved)

				allValid := true
				for _, tg := range myTargets {
					if !validate.Valid(bitmap, tg.Faces) {
						allValid = false
						break
					}
				}
				if !allValid || !dedup.addIfNew(bitmap) {
					continue
				}

				emit(Candidate{Bitmap: bitmap, Matches: targets})
			}
		}()
	}
	wg.Wait()

	return nil
}
