// File: api.go — Score and Valid, the public entry points for Component
// D (spec §4.D).
package validate

import (
	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/netshape"
)

// Score reports how close bitmap n comes to being a valid net of the
// target box described by faces. 0 means n folds onto the target
// without overlap, covering every face exactly once. A positive result
// is the fewest overlap events seen over every starting cell and
// rotation tried. A negative result's absolute value is the fewest
// uncovered faces seen among attempts that had no overlaps but didn't
// reach full coverage. When n's cell total differs from len(faces), no
// fold is tried and the positive result is the size of that difference.
func Score(n netshape.Bitmap, faces []boxgraph.Face) int {
	total := n.Sum()
	if total == 0 {
		if len(faces) == 0 {
			return 0
		}
		return len(faces)
	}
	if len(faces) != total {
		return abs(total - len(faces))
	}

	best := total + 1 // worse than any possible overlap count
	found := false
	forEachAttempt(n, faces, func(res attemptResult) bool {
		candidate := res.score(total)
		if !found || better(candidate, best) {
			best = candidate
			found = true
		}
		return candidate != 0
	})
	return best
}

// Valid reports whether bitmap n folds onto the target box described by
// faces without overlap, covering every face exactly once. It returns as
// soon as one attempt achieves a perfect fold.
func Valid(n netshape.Bitmap, faces []boxgraph.Face) bool {
	total := n.Sum()
	if total == 0 {
		return len(faces) == 0
	}
	if len(faces) != total {
		return false
	}

	perfect := false
	forEachAttempt(n, faces, func(res attemptResult) bool {
		if res.score(total) == 0 {
			perfect = true
			return false
		}
		return true
	})
	return perfect
}

// forEachAttempt iterates every (start cell, start rotation) combination
// in spec §4.D's order, calling visit with each attempt's result. visit
// returns false to stop early (Valid's short-circuit on a perfect fold).
func forEachAttempt(n netshape.Bitmap, faces []boxgraph.Face, visit func(attemptResult) bool) {
	for i := 0; i < n.Rows; i++ {
		for j := 0; j < n.Cols; j++ {
			if n.At(i, j) == 0 {
				continue
			}
			for r := 0; r < 4; r++ {
				if !visit(foldAttempt(n, faces, i, j, r)) {
					return
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
