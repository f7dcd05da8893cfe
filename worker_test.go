package solver

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/stretchr/testify/require"

	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/internal/hooks"
	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/internal/logging"
	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/internal/metrics"
	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

func newTestWorker(rng types.Range, pred Predicate) *worker {
	h := hooks.NewNop()

	return &worker{
		id:        0,
		rng:       rng,
		predicate: pred,
		cancelled: &atomic.Bool{},
		slot:      newResultSlot(),
		tally:     xsync.NewCounter(),
		batch:     1,
		hooks:     &h,
		metrics:   metrics.NewNop(),
		logger:    logging.NewNop(),
	}
}

func TestWorker_Found(t *testing.T) {
	w := newTestWorker(types.Range{Start: 0, End: 100},
		PredicateFunc(func(c uint64) bool { return c == 42 }))

	state := w.scan(context.Background())

	require.Equal(t, StateFound, state)

	candidate, ok := w.slot.get()
	require.True(t, ok)
	require.Equal(t, uint64(42), candidate)
	require.True(t, w.cancelled.Load(), "winner must set the cancellation flag")
}

func TestWorker_Exhausted(t *testing.T) {
	w := newTestWorker(types.Range{Start: 0, End: 50},
		PredicateFunc(func(c uint64) bool { return false }))

	state := w.scan(context.Background())

	require.Equal(t, StateExhausted, state)

	_, ok := w.slot.get()
	require.False(t, ok)
	require.False(t, w.cancelled.Load())
	require.Equal(t, int64(50), w.tally.Value(), "all candidates counted")
}

func TestWorker_EmptyRangeExhaustsImmediately(t *testing.T) {
	evaluated := false
	w := newTestWorker(types.Range{Start: 10, End: 10},
		PredicateFunc(func(c uint64) bool {
			evaluated = true

			return true
		}))

	state := w.scan(context.Background())

	require.Equal(t, StateExhausted, state)
	require.False(t, evaluated)
}

func TestWorker_CancelledBeforeFirstEvaluation(t *testing.T) {
	var evaluations atomic.Int64
	w := newTestWorker(types.Range{Start: 0, End: 1000},
		PredicateFunc(func(c uint64) bool {
			evaluations.Add(1)

			return true
		}))
	w.cancelled.Store(true)

	state := w.scan(context.Background())

	require.Equal(t, StateCancelled, state)
	require.Zero(t, evaluations.Load(),
		"a set flag must stop the worker before it evaluates anything")
}

func TestWorker_LostRace(t *testing.T) {
	w := newTestWorker(types.Range{Start: 0, End: 10},
		PredicateFunc(func(c uint64) bool { return true }))

	// Another worker already claimed the slot but this worker has not yet
	// observed the cancellation flag.
	require.True(t, w.slot.tryPublish(9999))

	state := w.scan(context.Background())

	require.Equal(t, StateLostRace, state)

	candidate, ok := w.slot.get()
	require.True(t, ok)
	require.Equal(t, uint64(9999), candidate, "loser must not overwrite the slot")
}

func TestWorker_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := newTestWorker(types.Range{Start: 0, End: 1 << 20},
		PredicateFunc(func(c uint64) bool { return false }))

	state := w.scan(ctx)

	require.Equal(t, StateCancelled, state)
}

func TestWorker_AscendingScanOrder(t *testing.T) {
	var mu sync.Mutex
	var seen []uint64

	w := newTestWorker(types.Range{Start: 5, End: 15},
		PredicateFunc(func(c uint64) bool {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, c)

			return false
		}))

	state := w.scan(context.Background())

	require.Equal(t, StateExhausted, state)
	require.Equal(t, []uint64{5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, seen)
}

func TestWorker_BatchFlushesResidue(t *testing.T) {
	w := newTestWorker(types.Range{Start: 0, End: 10},
		PredicateFunc(func(c uint64) bool { return false }))
	w.batch = 64 // larger than the range; only the final flush fires

	state := w.scan(context.Background())

	require.Equal(t, StateExhausted, state)
	require.Equal(t, int64(10), w.tally.Value())
}
