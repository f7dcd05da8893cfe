package types

import "context"

// Hooks defines callbacks for solver lifecycle events.
//
// All hooks are optional. Hooks are invoked synchronously from worker
// goroutines, so several hooks may run concurrently during one solve run. The
// context passed to hooks is the run context and is cancelled when the run's
// errgroup unwinds.
//
// Hook errors are logged but never fail the run.
//
// Best practices for hook implementations:
//   - Complete quickly (workers block until the hook returns)
//   - Respect context cancellation
//   - Be safe for concurrent invocation
//
// Example:
//
//	hooks := &solver.Hooks{
//	    OnSolutionFound: func(ctx context.Context, workerID int, candidate uint64) error {
//	        log.Printf("worker %d found %d", workerID, candidate)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnSolutionFound is called by the winning worker immediately after it
	// publishes its candidate to the result slot.
	OnSolutionFound func(ctx context.Context, workerID int, candidate uint64) error

	// OnWorkerDone is called by every worker when it reaches a terminal state,
	// including the winner (after OnSolutionFound).
	OnWorkerDone func(ctx context.Context, workerID int, state State, scanned uint64) error
}
