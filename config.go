package solver

import (
	"fmt"
	"runtime"
)

// DefaultSearchBound is the candidate space size used when Config.SearchBound
// is left unset.
//
// The bound is deliberately an explicit, caller-visible parameter: deriving it
// from the worker count would silently shrink the searched space as
// parallelism grows. 2^32 candidates is large enough that a difficulty-1
// SHA-256 puzzle is found with overwhelming probability, while still bounding
// the worst-case (exhaustive) run.
const DefaultSearchBound uint64 = 1 << 32

// DefaultScanBatch is the number of candidates a worker evaluates between
// progress-counter flushes and context polls.
const DefaultScanBatch uint64 = 4096

// Config is the configuration for the Solver.
type Config struct {
	// Workers is the number of concurrent scan workers.
	// Set to 0 to use the host's available parallelism (runtime.NumCPU).
	// Negative values are rejected by Validate.
	Workers int `yaml:"workers"`

	// SearchBound is the size N of the candidate space [0, N).
	// Set to 0 to use DefaultSearchBound. The solver never evaluates a
	// candidate >= SearchBound; if no candidate below the bound satisfies the
	// predicate, Solve returns ErrNotFound.
	SearchBound uint64 `yaml:"searchBound"`

	// ScanBatch is the number of candidates a worker evaluates between
	// flushing its scanned-count into the shared progress counter and polling
	// the run context. The shared cancellation flag is still polled before
	// every single candidate; ScanBatch only trades progress granularity
	// against counter contention. Set to 0 to use DefaultScanBatch.
	ScanBatch uint64 `yaml:"scanBatch"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Workers:     runtime.NumCPU(),
		SearchBound: DefaultSearchBound,
		ScanBatch:   DefaultScanBatch,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.SearchBound == 0 {
		cfg.SearchBound = defaults.SearchBound
	}
	if cfg.ScanBatch == 0 {
		cfg.ScanBatch = defaults.ScanBatch
	}
}

// Validate checks configuration constraints and returns an error for invalid
// values.
//
// Hard Validation Rules:
//   - Workers >= 1 (a run needs at least one scan worker)
//   - SearchBound >= 1 (an empty space has nothing to search)
//   - ScanBatch >= 1
//
// Returns:
//   - error: Validation error with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: Workers must be >= 1, got %d", ErrInvalidConfig, cfg.Workers)
	}

	if cfg.SearchBound < 1 {
		return fmt.Errorf("%w: SearchBound must be >= 1", ErrInvalidConfig)
	}

	if cfg.ScanBatch < 1 {
		return fmt.Errorf("%w: ScanBatch must be >= 1", ErrInvalidConfig)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for
// non-recommended values.
//
// This is called after Validate() in New() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	// Warn when some workers would receive empty ranges.
	if cfg.SearchBound < uint64(cfg.Workers) {
		logger.Warn(
			"SearchBound is smaller than the worker count, some workers will have empty ranges",
			"searchBound", cfg.SearchBound,
			"workers", cfg.Workers,
		)
	}

	// Warn when the batch dwarfs per-worker ranges, making progress reporting
	// effectively end-of-run only.
	if cfg.Workers > 0 && cfg.ScanBatch > cfg.SearchBound/uint64(cfg.Workers) {
		logger.Warn(
			"ScanBatch exceeds the per-worker range, progress counters update only at scan end",
			"scanBatch", cfg.ScanBatch,
			"perWorkerRange", cfg.SearchBound/uint64(cfg.Workers),
		)
	}
}

// TestConfig returns a configuration optimized for fast test execution.
//
// The search bound is small enough for exhaustive scans to finish in
// microseconds and the batch size of 1 makes progress counters and
// cancellation observable at single-candidate granularity. Use
// DefaultConfig() for production workloads.
//
// Returns:
//   - Config: Configuration with test-sized values
//
// Example:
//
//	cfg := solver.TestConfig()
//	cfg.Workers = 4
//	s, err := solver.New(&cfg, pred, strategy.NewContiguous())
func TestConfig() Config {
	return Config{
		Workers:     4,
		SearchBound: 1 << 16,
		ScanBatch:   1,
	}
}
