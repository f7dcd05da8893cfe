// This package contains shared types that are used across multiple packages in
// the solver library. By keeping these types in a separate package, we avoid
// import cycles between the main solver package and its internal
// implementations.
//
// Key types:
//   - Range: Half-open interval of candidate values assigned to one worker
//   - State: Worker terminal state
//   - Predicate: Deterministic membership test for candidates
//   - Partitioner: Search-space splitting strategy
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
