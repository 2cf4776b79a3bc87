// File: heuristic.go — the heuristic-mode search (spec §5, §7): each
// worker repeatedly randomises the source box's face labelling and
// walks its spanning trees in that order, abandoning an attempt once its
// summed score across all targets exceeds cfg.ScoreThreshold. The first
// worker to find a bitmap that validates against every target wins.
package worker

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/config"
	"github.com/boxnets/netfold/netshape"
	"github.com/boxnets/netfold/spantree"
	"github.com/boxnets/netfold/validate"
)

// RunHeuristic searches for a single bitmap that validates against every
// target, fanning out across cfg.Processes workers seeded from seed. It
// returns the winning Candidate and true, or a zero Candidate and false
// if ctx is cancelled before any worker finds one.
func RunHeuristic(ctx context.Context, source boxgraph.Dimensions, targets []boxgraph.Dimensions, cfg config.Config, seed int64) (Candidate, bool, error) {
	if err := checkAreas(source, targets); err != nil {
		return Candidate{}, false, err
	}
	targetGraphs, err := buildGraphs(targets)
	if err != nil {
		return Candidate{}, false, err
	}

	workers := cfg.Processes
	if workers < 1 {
		workers = 1
	}

	var isDone int32
	var found int32
	var result Candidate
	var resultMu sync.Mutex
	var fatal error
	var fatalOnce sync.Once

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(workerSeed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(workerSeed))

			for atomic.LoadInt32(&isDone) == 0 {
				select {
				case <-ctx.Done():
					return
				default:
				}

				myTargets := cloneGraphs(targetGraphs)
				candidate, err := attemptSearch(ctx, source, targets, myTargets, cfg, rng, &isDone)
				if err != nil {
					if errors.Is(err, ErrThresholdExceeded) {
						continue
					}
					fatalOnce.Do(func() {
						fatal = err
						atomic.StoreInt32(&isDone, 1)
					})
					return
				}
				if candidate != nil {
					resultMu.Lock()
					if atomic.CompareAndSwapInt32(&isDone, 0, 1) {
						result = *candidate
						atomic.StoreInt32(&found, 1)
					}
					resultMu.Unlock()
					return
				}
			}
		}(seed + int64(w))
	}
	wg.Wait()

	if fatal != nil {
		return Candidate{}, false, fatal
	}
	return result, atomic.LoadInt32(&found) == 1, nil
}

// attemptSearch runs one randomised pass over source's spanning trees,
// scoring every candidate against targetGraphs. It returns a Candidate
// once one validates against every target, ErrThresholdExceeded once the
// summed score exceeds cfg.ScoreThreshold, or (nil, nil) if the pass
// exhausts every spanning tree of this labelling without either.
func attemptSearch(ctx context.Context, source boxgraph.Dimensions, targetDims []boxgraph.Dimensions, targetGraphs []*boxgraph.Graph, cfg config.Config, rng *rand.Rand, isDone *int32) (*Candidate, error) {
	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, err := boxgraph.Build(source, boxgraph.WithRandomise(rng))
	if err != nil {
		return nil, err
	}

	vertices, edges := spantree.FromBoxGraph(g)
	trees, err := spantree.Enumerate(attemptCtx, vertices, edges)
	if err != nil {
		return nil, err
	}

	for tree := range trees {
		if atomic.LoadInt32(isDone) != 0 {
			return nil, nil
		}

		resolved := spantree.Resolve(edges, tree)
		bitmap := netshape.Unfold(g.Faces, resolved)

		total := 0
		allValid := true
		for _, tg := range targetGraphs {
			s := validate.Score(bitmap, tg.Faces)
			total += s
			if s != 0 {
				allValid = false
			}
		}

		if allValid {
			return &Candidate{Bitmap: bitmap, Matches: targetDims}, nil
		}
		if total > cfg.ScoreThreshold {
			return nil, ErrThresholdExceeded
		}
	}
	return nil, nil
}
