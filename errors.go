package solver

import "errors"

// Sentinel errors returned by the Solver.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPredicateRequired is returned when the predicate is nil.
	ErrPredicateRequired = errors.New("predicate is required")

	// ErrPartitionerRequired is returned when the partitioner is nil.
	ErrPartitionerRequired = errors.New("partitioner is required")

	// ErrNotFound is returned when no candidate below the search bound
	// satisfies the predicate. It is a legitimate outcome, not a failure:
	// every worker exhausted its range without a match.
	ErrNotFound = errors.New("no satisfying candidate below the search bound")
)
