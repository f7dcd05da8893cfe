package solver

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

// worker scans one range of the candidate space.
//
// All shared state (cancellation flag, result slot, progress counter) is
// handed to the worker at spawn time; there is no package-level state. A
// worker runs exactly once and reaches exactly one terminal state.
type worker struct {
	id        int
	rng       types.Range
	predicate Predicate

	// Shared per-run handles.
	cancelled *atomic.Bool
	slot      *resultSlot
	tally     *xsync.Counter

	batch   uint64
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger
}

// scan iterates the worker's range in ascending order and returns the
// terminal state reached.
func (w *worker) scan(ctx context.Context) types.State {
	began := time.Now()
	state, scanned := w.loop(ctx)

	w.metrics.RecordWorkerOutcome(state, time.Since(began).Seconds())
	if state == types.StateLostRace {
		w.metrics.RecordRaceLost()
	}

	if w.hooks.OnWorkerDone != nil {
		if err := w.hooks.OnWorkerDone(ctx, w.id, state, scanned); err != nil {
			w.logger.Error("OnWorkerDone hook failed", "worker", w.id, "error", err)
		}
	}

	w.logger.Debug("worker finished",
		"worker", w.id,
		"range", w.rng.String(),
		"state", state.String(),
		"scanned", scanned,
	)

	return state
}

// loop runs the per-candidate protocol:
//  1. Poll the shared cancellation flag; if set, stop as Cancelled without
//     evaluating the remaining candidates.
//  2. Evaluate the predicate.
//  3. On success, attempt to claim the result slot. Winning the claim sets the
//     cancellation flag and ends as Found; losing ends as LostRace.
//
// The flag is polled once per candidate, so cancellation latency is bounded by
// one predicate evaluation. The run context is polled once per batch; an
// externally cancelled context also ends the scan as Cancelled.
func (w *worker) loop(ctx context.Context) (types.State, uint64) {
	var scanned, sinceFlush uint64
	defer func() { w.flush(sinceFlush) }()

	for c := w.rng.Start; c < w.rng.End; c++ {
		// Advisory early exit. The flag is racy by design: missing a freshly
		// set flag costs at most a few wasted evaluations, never correctness.
		if w.cancelled.Load() {
			return types.StateCancelled, scanned
		}

		if sinceFlush >= w.batch {
			w.flush(sinceFlush)
			sinceFlush = 0
			if ctx.Err() != nil {
				return types.StateCancelled, scanned
			}
		}

		ok := w.predicate.Test(c)
		scanned++
		sinceFlush++

		if !ok {
			continue
		}

		if !w.slot.tryPublish(c) {
			// Another worker won the race; its claim already set the flag.
			return types.StateLostRace, scanned
		}

		w.cancelled.Store(true)
		w.logger.Info("worker published solution", "worker", w.id, "candidate", c)
		w.solutionFound(ctx, c)

		return types.StateFound, scanned
	}

	return types.StateExhausted, scanned
}

// flush folds the locally accumulated scan count into the shared counter.
func (w *worker) flush(n uint64) {
	if n == 0 {
		return
	}
	w.tally.Add(int64(n))
	w.metrics.RecordCandidatesScanned(n)
}

func (w *worker) solutionFound(ctx context.Context, candidate uint64) {
	if w.hooks.OnSolutionFound == nil {
		return
	}
	if err := w.hooks.OnSolutionFound(ctx, w.id, candidate); err != nil {
		w.logger.Error("OnSolutionFound hook failed", "worker", w.id, "error", err)
	}
}
