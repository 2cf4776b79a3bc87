package worker

import "errors"

// Sentinel errors for the worker pool (spec §7).
var (
	// ErrAreaMismatch indicates the supplied boxes don't all share the
	// same surface area F (spec §6 InvalidDimensionsError).
	ErrAreaMismatch = errors.New("worker: all boxes must have equal surface area")

	// ErrThresholdExceeded signals that a heuristic search attempt's
	// summed score drifted past cfg.ScoreThreshold: the caller's loop
	// should discard all per-attempt state and restart with a fresh
	// randomisation (spec §7 ThresholdExceeded).
	ErrThresholdExceeded = errors.New("worker: score threshold exceeded")
)
