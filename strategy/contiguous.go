package strategy

import (
	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

// Contiguous implements equal-chunk contiguous partitioning.
type Contiguous struct{}

var _ types.Partitioner = (*Contiguous)(nil)

// NewContiguous creates a new contiguous partitioner.
//
// The partitioner assigns worker i the range [i*chunk, (i+1)*chunk) where
// chunk = total/workers (truncating division). The final worker's range ends
// at total, absorbing the remainder, so the union of all ranges is exactly
// [0, total) even when total is not evenly divisible.
//
// Returns:
//   - *Contiguous: Initialized contiguous partitioner
//
// Example:
//
//	part := strategy.NewContiguous()
//	s, err := solver.New(&cfg, pred, part)
func NewContiguous() *Contiguous {
	return &Contiguous{}
}

// Split divides [0, total) into `workers` contiguous ranges.
//
// Guarantees: ranges are disjoint, contiguous, and cover [0, total) exactly;
// every range is non-empty whenever total >= workers.
//
// Parameters:
//   - total: Size of the candidate space
//   - workers: Number of ranges to produce
//
// Returns:
//   - []types.Range: Exactly `workers` ranges
//   - error: ErrNoWorkers if workers < 1
func (c *Contiguous) Split(total uint64, workers int) ([]types.Range, error) {
	if workers < 1 {
		return nil, ErrNoWorkers
	}

	chunk := total / uint64(workers)
	ranges := make([]types.Range, workers)
	for i := range workers {
		ranges[i] = types.Range{
			Start: uint64(i) * chunk,
			End:   uint64(i+1) * chunk,
		}
	}

	// The last range absorbs the truncation remainder.
	ranges[workers-1].End = total

	return ranges, nil
}
