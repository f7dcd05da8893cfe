package types

// Partitioner splits a search space into per-worker ranges.
//
// Implementations divide [0, total) into exactly `workers` disjoint,
// contiguous ranges whose union covers the space with no gaps or overlaps.
// Built-in implementations live in the strategy package:
//   - Contiguous: equal chunks, the last range absorbs the division remainder
//   - Balanced: spreads the remainder across the leading ranges
//
// Partitioner implementations should:
//   - Be deterministic (same input → same output)
//   - Fail fast on invalid worker counts rather than divide by zero
//   - Be stateless (no side effects)
type Partitioner interface {
	// Split divides [0, total) into per-worker ranges.
	//
	// Parameters:
	//   - total: Size of the candidate space
	//   - workers: Number of ranges to produce (must be >= 1)
	//
	// Returns:
	//   - []Range: Exactly `workers` ranges covering [0, total)
	//   - error: Split error (e.g., strategy.ErrNoWorkers)
	Split(total uint64, workers int) ([]Range, error)
}
