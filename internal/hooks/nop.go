// Package hooks provides the default no-op hook implementations.
package hooks

import (
	"context"

	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, int, uint64) error              = (*NopHooks)(nil).OnSolutionFound
	_ func(context.Context, int, types.State, uint64) error = (*NopHooks)(nil).OnWorkerDone
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}

	return types.Hooks{
		OnSolutionFound: h.OnSolutionFound,
		OnWorkerDone:    h.OnWorkerDone,
	}
}

// OnSolutionFound is a no-op implementation.
func (h *NopHooks) OnSolutionFound(_ context.Context, _ int, _ uint64) error {
	return nil
}

// OnWorkerDone is a no-op implementation.
func (h *NopHooks) OnWorkerDone(_ context.Context, _ int, _ types.State, _ uint64) error {
	return nil
}
