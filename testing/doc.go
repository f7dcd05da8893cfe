// Package testing provides test utilities for the solver library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: types.Logger backed by a testing.T
//   - NewCountingPredicate: Predicate wrapper counting evaluations
//
// Example usage:
//
//	import (
//	    "testing"
//	    solvertest "github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/testing"
//	)
//
//	func TestMyPredicate(t *testing.T) {
//	    logger := solvertest.NewTestLogger(t)
//	    s, err := solver.New(&cfg, pred, part, solver.WithLogger(logger))
//	    // ...
//	}
package testing
