package solver

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"

	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/internal/hooks"
	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/internal/logging"
	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/internal/metrics"
)

// Solver coordinates a parallel bounded brute-force search.
//
// Solver is the main entry point of the library. It handles:
//   - Partitioning the candidate space across workers
//   - Spawning one scan worker per range
//   - Cooperative cancellation once a worker publishes a solution
//   - Race resolution via a single lock-guarded result slot
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Each Solve call owns its cancellation flag and result slot, so a Solver
//     can run multiple independent solves concurrently
//
// Lifecycle:
//   - Create with New()
//   - Call Solve() per problem run; the run always completes once started
//   - Read cumulative progress with Scanned()
type Solver struct {
	cfg         Config
	predicate   Predicate
	partitioner Partitioner

	// Optional dependencies
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger

	// scanned accumulates evaluated candidates across all runs. The striped
	// counter keeps the per-candidate hot path cheap under many workers.
	scanned *xsync.Counter
}

// New creates a new Solver instance with the provided configuration.
//
// Returns a concrete *Solver struct following the "accept interfaces, return
// structs" principle. Consumers can define their own interfaces for testing.
//
// Parameters:
//   - cfg: Runtime configuration (defaults are applied in place)
//   - predicate: Membership test deciding whether a candidate solves the
//     problem instance; must be pure, deterministic and concurrency-safe
//   - partitioner: Search-space splitting strategy
//     (recommended: strategy.NewContiguous())
//   - opts: Optional configuration (hooks, metrics, logger)
//
// Returns:
//   - *Solver: Initialized solver instance
//   - error: Validation error if the configuration is invalid
//
// Example:
//
//	cfg := solver.DefaultConfig()
//	p := puzzle.New([]byte("Some data"), 1)
//	s, err := solver.New(&cfg, p, strategy.NewContiguous())
func New(cfg *Config, predicate Predicate, partitioner Partitioner, opts ...Option) (*Solver, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if predicate == nil {
		return nil, ErrPredicateRequired
	}
	if partitioner == nil {
		return nil, ErrPartitionerRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Apply options
	options := &solverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks
	// everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	// Validate with warnings after logger is available
	cfg.ValidateWithWarnings(loggerInstance)

	hooksInstance := options.hooks
	if hooksInstance == nil {
		nopHooks := hooks.NewNop()
		hooksInstance = &nopHooks
	}

	return &Solver{
		cfg:         *cfg,
		predicate:   predicate,
		partitioner: partitioner,
		hooks:       hooksInstance,
		metrics:     metricsCollector,
		logger:      loggerInstance,
		scanned:     xsync.NewCounter(),
	}, nil
}

// Solve searches [0, SearchBound) for a candidate satisfying the predicate.
//
// The space is split into one range per worker; workers scan their ranges in
// ascending order and the first successful claim of the result slot wins.
// Solve blocks until every worker reaches a terminal state, then returns the
// published candidate or ErrNotFound if the whole bounded space was exhausted
// without a match.
//
// The published candidate is whichever winner claimed the slot first, NOT
// necessarily the numerically smallest satisfying value in the space.
//
// Parameters:
//   - ctx: Context for external cancellation; a cancelled context aborts the
//     run at batch granularity and Solve returns the context error
//
// Returns:
//   - uint64: A candidate c with predicate.Test(c) == true
//   - error: ErrNotFound when no candidate below the bound satisfies the
//     predicate, the context error on external cancellation, or a partition
//     failure
func (s *Solver) Solve(ctx context.Context) (uint64, error) {
	ranges, err := s.partitioner.Split(s.cfg.SearchBound, s.cfg.Workers)
	if err != nil {
		return 0, fmt.Errorf("failed to partition search space: %w", err)
	}

	// Per-run shared handles, passed to every worker at spawn time.
	cancelled := &atomic.Bool{}
	slot := newResultSlot()

	s.metrics.RecordSolveStarted(len(ranges), s.cfg.SearchBound)
	s.logger.Debug("solve started",
		"workers", len(ranges),
		"bound", s.cfg.SearchBound,
	)

	began := time.Now()

	g, runCtx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		w := &worker{
			id:        i,
			rng:       r,
			predicate: s.predicate,
			cancelled: cancelled,
			slot:      slot,
			tally:     s.scanned,
			batch:     s.cfg.ScanBatch,
			hooks:     s.hooks,
			metrics:   s.metrics,
			logger:    s.logger,
		}
		g.Go(func() error {
			w.scan(runCtx)

			return nil
		})
	}

	// Workers are total over their finite ranges and never return errors, so
	// Wait only joins; a worker panic propagates and fails the whole run.
	_ = g.Wait()

	elapsed := time.Since(began).Seconds()

	if candidate, ok := slot.get(); ok {
		s.metrics.RecordSolveDuration(elapsed, true)
		s.logger.Info("solve finished",
			"candidate", candidate,
			"elapsedSeconds", elapsed,
		)

		return candidate, nil
	}

	s.metrics.RecordSolveDuration(elapsed, false)

	if ctxErr := ctx.Err(); ctxErr != nil {
		s.logger.Warn("solve aborted", "error", ctxErr)

		return 0, fmt.Errorf("solve aborted: %w", ctxErr)
	}

	s.logger.Info("solve exhausted the search space", "bound", s.cfg.SearchBound)

	return 0, ErrNotFound
}

// Scanned returns the cumulative number of candidates evaluated across all
// solve runs, at ScanBatch granularity.
//
// Returns:
//   - uint64: Total evaluated candidates
func (s *Solver) Scanned() uint64 {
	v := s.scanned.Value()
	if v < 0 {
		return 0
	}

	return uint64(v)
}
