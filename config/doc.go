// Package config loads the two runtime knobs spec §6 exposes, PROCESSES
// (parallel worker count) and SCORE_THRESHOLD (heuristic mode only), plus
// a DEDUP switch for exhaustive mode's seen set. It
// supports a YAML file plus CLI flag overrides, following dshills/dungo's
// pkg/dungeon.LoadConfig shape (read file, unmarshal, default, validate).
package config
