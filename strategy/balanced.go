package strategy

import (
	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

// Balanced implements contiguous partitioning with an evenly spread remainder.
type Balanced struct{}

var _ types.Partitioner = (*Balanced)(nil)

// NewBalanced creates a new balanced partitioner.
//
// Unlike Contiguous, which hands the whole division remainder to the final
// worker, Balanced gives one extra candidate to each of the first
// total%workers ranges. Range lengths therefore differ by at most one, which
// matters when the bound is small relative to the worker count.
//
// Returns:
//   - *Balanced: Initialized balanced partitioner
func NewBalanced() *Balanced {
	return &Balanced{}
}

// Split divides [0, total) into `workers` contiguous ranges whose lengths
// differ by at most one.
//
// Parameters:
//   - total: Size of the candidate space
//   - workers: Number of ranges to produce
//
// Returns:
//   - []types.Range: Exactly `workers` ranges covering [0, total)
//   - error: ErrNoWorkers if workers < 1
func (b *Balanced) Split(total uint64, workers int) ([]types.Range, error) {
	if workers < 1 {
		return nil, ErrNoWorkers
	}

	chunk := total / uint64(workers)
	rem := total % uint64(workers)

	ranges := make([]types.Range, workers)
	var start uint64
	for i := range workers {
		length := chunk
		if uint64(i) < rem {
			length++
		}
		ranges[i] = types.Range{Start: start, End: start + length}
		start += length
	}

	return ranges, nil
}
