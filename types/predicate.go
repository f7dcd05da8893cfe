package types

// Predicate decides whether a candidate value solves the problem instance.
//
// Implementations must be:
//   - Pure: no observable side effects
//   - Deterministic: the same candidate always yields the same result
//   - Concurrency-safe: called from many workers with no coordination
//
// The solver treats the predicate as a total function; it never fails and is
// never retried. Any state the predicate carries (payload, difficulty) must be
// read-only for the duration of a solve.
type Predicate interface {
	// Test reports whether the candidate satisfies the predicate.
	//
	// Parameters:
	//   - candidate: Candidate value to test
	//
	// Returns:
	//   - bool: true if the candidate solves the instance
	Test(candidate uint64) bool
}

// PredicateFunc adapts a plain function to the Predicate interface.
type PredicateFunc func(candidate uint64) bool

var _ Predicate = (PredicateFunc)(nil)

// Test calls the wrapped function.
func (f PredicateFunc) Test(candidate uint64) bool {
	return f(candidate)
}
