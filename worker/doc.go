// Package worker implements spec §5's concurrency model: shared-nothing
// fan-out over a pool of worker goroutines, each holding its own deep
// copy of the target face lists, pulling candidates from spantree/
// netshape and validating them independently via validate.
//
// Grounded on lvlath/core's concurrency idiom (methods.go,
// methods_edges.go): plain sync/atomic counters and a mutex-guarded map,
// no errgroup or other third-party concurrency helper.
package worker
