// Package solver provides a parallel bounded brute-force search over a finite
// integer candidate space.
//
// Given a deterministic predicate and a search bound N, the solver divides
// [0, N) into disjoint contiguous ranges, scans them concurrently on multiple
// workers, and stops all workers as soon as one succeeds. The published result
// is whichever worker's success claims the shared result slot first; it is not
// guaranteed to be the numerically smallest satisfying candidate.
//
// # Quick Start
//
//	cfg := solver.DefaultConfig()
//	cfg.SearchBound = 1 << 32
//
//	p := puzzle.New([]byte("Some data"), 1)
//	s, err := solver.New(&cfg, p, strategy.NewContiguous())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	nonce, err := s.Solve(context.Background())
//	if errors.Is(err, solver.ErrNotFound) {
//	    // no candidate below the bound satisfies the predicate
//	}
//
// # Coordination Model
//
// Each worker scans its range in ascending order. Before every predicate
// evaluation it polls a shared cancellation flag; once any worker publishes a
// solution the flag is set and the remaining workers stop early. The flag is
// advisory only: the single mutex-guarded result slot, not the flag, decides
// the winner when several workers succeed near-simultaneously.
//
// Worker terminal states:
//
//	Scanning → Found | LostRace | Exhausted | Cancelled
//
// # Predicates
//
// Any type implementing the Predicate interface can be searched. The puzzle
// subpackage provides SHA-256 and xxh3 proof-of-work style predicates plus a
// random instance generator; PredicateFunc adapts plain functions.
//
// # Observability
//
// Structured logging (WithLogger), metrics (WithMetrics, including a
// Prometheus-backed collector) and lifecycle hooks (WithHooks) are all
// optional and default to no-ops.
package solver
