// Package strategy provides built-in partitioner implementations.
//
// Partitioners determine how the candidate space [0, N) is divided across
// workers. The package includes two built-in strategies:
//
//   - Contiguous: equal chunks by truncating division, with the final range
//     absorbing the remainder (recommended default)
//   - Balanced: spreads the division remainder one candidate at a time across
//     the leading ranges, so range lengths differ by at most one
//
// # Strategy Selection Guide
//
// Contiguous:
//   - Use when the cost of evaluating a candidate is uniform
//   - Cheapest to compute; the last worker scans up to W-1 extra candidates
//
// Balanced:
//   - Use for very small bounds or large worker counts, where the remainder
//     is a meaningful share of each worker's range
//
// Both strategies guarantee disjoint, contiguous ranges whose union is exactly
// [0, N). Custom strategies can be implemented by satisfying the
// types.Partitioner interface.
package strategy
