package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading and validation.
var (
	// ErrInvalidProcesses indicates a non-positive PROCESSES value.
	ErrInvalidProcesses = errors.New("config: processes must be positive")
	// ErrInvalidThreshold indicates a negative SCORE_THRESHOLD value.
	ErrInvalidThreshold = errors.New("config: score threshold must be non-negative")
)

// Config holds the two knobs spec §6 names plus the Dedup switch.
// SCORE_THRESHOLD only matters in heuristic mode; exhaustive mode
// ignores it.
type Config struct {
	// Processes is the parallel worker count. Default sets it to
	// runtime.NumCPU(), and LoadBytes replaces a loaded zero with the same.
	Processes int `yaml:"processes" json:"processes"`

	// ScoreThreshold bounds how far a heuristic search lets a candidate's
	// score drift before abandoning it and re-randomising (spec §7
	// ThresholdExceeded).
	ScoreThreshold int `yaml:"score_threshold" json:"score_threshold"`

	// Dedup enables the seen-set dedup described in spec §5; disabling
	// it is the documented escape hatch for pathological inputs whose
	// seen set would otherwise grow unbounded.
	Dedup bool `yaml:"dedup" json:"dedup"`
}

// Default returns the zero-value config filled in with
// platform-dependent defaults: Processes = runtime.NumCPU(),
// ScoreThreshold = 0, Dedup = true.
func Default() Config {
	return Config{
		Processes:      runtime.NumCPU(),
		ScoreThreshold: 0,
		Dedup:          true,
	}
}

// Load reads and validates a YAML configuration file at path, filling in
// defaults for any zero-valued field PROCESSES leaves unset.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses YAML configuration from data, for callers that don't
// have (or don't want) a file on disk — tests, and programmatic use.
func LoadBytes(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing YAML: %w", err)
	}
	if cfg.Processes == 0 {
		cfg.Processes = runtime.NumCPU()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that Processes and ScoreThreshold are in range.
func (c Config) Validate() error {
	if c.Processes < 1 {
		return ErrInvalidProcesses
	}
	if c.ScoreThreshold < 0 {
		return ErrInvalidThreshold
	}
	return nil
}
