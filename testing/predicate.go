package testing

import (
	"sync/atomic"

	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

// CountingPredicate wraps a predicate and counts how many times it is
// evaluated. The count is safe to read concurrently.
//
// Useful for asserting determinism properties and cancellation behavior:
// a cancelled worker must stop evaluating, which is observable as the count
// staying below the range size.
type CountingPredicate struct {
	inner types.Predicate
	calls atomic.Uint64
}

var _ types.Predicate = (*CountingPredicate)(nil)

// NewCountingPredicate wraps the given predicate.
//
// Parameters:
//   - inner: Predicate whose evaluations are counted
//
// Returns:
//   - *CountingPredicate: Counting wrapper
func NewCountingPredicate(inner types.Predicate) *CountingPredicate {
	return &CountingPredicate{inner: inner}
}

// Test delegates to the wrapped predicate and increments the call count.
func (p *CountingPredicate) Test(candidate uint64) bool {
	p.calls.Add(1)

	return p.inner.Test(candidate)
}

// Calls returns the number of evaluations so far.
func (p *CountingPredicate) Calls() uint64 {
	return p.calls.Load()
}
