package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods are called from solver goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces so callers can
// instrument only the areas they care about.
type MetricsCollector interface {
	SolveMetrics
	WorkerMetrics
}

// SolveMetrics defines metrics for solve-level operations.
type SolveMetrics interface {
	// RecordSolveStarted records the start of a solve run.
	//
	// Parameters:
	//   - workers: Number of workers spawned for the run
	//   - bound: Total search bound for the run
	RecordSolveStarted(workers int, bound uint64)

	// RecordSolveDuration records the wall time of a completed solve run.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - found: true if a solution was published, false on exhaustion
	RecordSolveDuration(duration float64, found bool)

	// RecordCandidatesScanned adds to the running total of evaluated candidates.
	//
	// Parameters:
	//   - count: Number of candidates evaluated since the last call
	RecordCandidatesScanned(count uint64)
}

// WorkerMetrics defines metrics for individual worker scans.
type WorkerMetrics interface {
	// RecordWorkerOutcome records a worker reaching a terminal state.
	//
	// Parameters:
	//   - state: Terminal state (Found, LostRace, Exhausted, Cancelled)
	//   - duration: Time the worker spent scanning, in seconds
	RecordWorkerOutcome(state State, duration float64)

	// RecordRaceLost records a worker finding a valid candidate after the
	// result slot was already occupied.
	RecordRaceLost()
}
