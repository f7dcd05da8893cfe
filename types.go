package solver

import "github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern allows internal packages to depend on `types` without
// depending on the root `solver` package, while still providing a convenient
// `solver.Range`, `solver.Predicate`, etc. for users.
type (
	Range = types.Range
	State = types.State
	Hooks = types.Hooks
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Predicate        = types.Predicate
	PredicateFunc    = types.PredicateFunc
	Partitioner      = types.Partitioner
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export State constants from the types subpackage.
const (
	StateScanning  = types.StateScanning
	StateFound     = types.StateFound
	StateLostRace  = types.StateLostRace
	StateExhausted = types.StateExhausted
	StateCancelled = types.StateCancelled
)
