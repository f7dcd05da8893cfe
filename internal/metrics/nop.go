// Package metrics provides MetricsCollector implementations for the solver
// library.
package metrics

import "github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	m := metrics.NewNop()
//	s, err := solver.New(&cfg, pred, part, solver.WithMetrics(m))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SolveMetrics implementation

// RecordSolveStarted discards the solve-start metric.
func (n *NopMetrics) RecordSolveStarted(_ /* workers */ int, _ /* bound */ uint64) {
	// No-op
}

// RecordSolveDuration discards the solve duration metric.
func (n *NopMetrics) RecordSolveDuration(_ /* duration */ float64, _ /* found */ bool) {
	// No-op
}

// RecordCandidatesScanned discards the scanned-candidates metric.
func (n *NopMetrics) RecordCandidatesScanned(_ /* count */ uint64) {
	// No-op
}

// WorkerMetrics implementation

// RecordWorkerOutcome discards the worker outcome metric.
func (n *NopMetrics) RecordWorkerOutcome(_ /* state */ types.State, _ /* duration */ float64) {
	// No-op
}

// RecordRaceLost discards the race-lost metric.
func (n *NopMetrics) RecordRaceLost() {
	// No-op
}
