package worker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/config"
	"github.com/boxnets/netfold/worker"
)

// TestRunHeuristicFindsCubeNet checks that the heuristic search finds a
// common net of a cube against itself: since every one of a cube's
// spanning trees is tried within a single randomised pass, and at least
// one always folds back onto the cube without overlap, a generous
// threshold guarantees a match well before any attempt is abandoned.
func TestRunHeuristicFindsCubeNet(t *testing.T) {
	cube := boxgraph.Dimensions{L: 1, H: 1, D: 1}
	cfg := config.Config{Processes: 2, ScoreThreshold: 1000, Dedup: true}

	candidate, ok, err := worker.RunHeuristic(context.Background(), cube, []boxgraph.Dimensions{cube}, cfg, 42)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, cube.Faces(), candidate.Bitmap.Sum())
	require.Equal(t, []boxgraph.Dimensions{cube}, candidate.Matches)
}

func TestRunHeuristicAreaMismatch(t *testing.T) {
	cfg := config.Config{Processes: 1, ScoreThreshold: 10}
	_, ok, err := worker.RunHeuristic(context.Background(), boxgraph.Dimensions{L: 1, H: 1, D: 1}, []boxgraph.Dimensions{{L: 2, H: 1, D: 1}}, cfg, 1)
	require.ErrorIs(t, err, worker.ErrAreaMismatch)
	require.False(t, ok)
}

// TestRunHeuristicContextCancellation checks that cancelling ctx before
// any worker finds a match returns ok=false without hanging.
func TestRunHeuristicContextCancellation(t *testing.T) {
	cube := boxgraph.Dimensions{L: 1, H: 1, D: 1}
	cfg := config.Config{Processes: 1, ScoreThreshold: -1000}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := worker.RunHeuristic(ctx, cube, []boxgraph.Dimensions{cube}, cfg, 7)
	require.NoError(t, err)
	require.False(t, ok)
}
