package types

import "fmt"

// Range is a half-open interval [Start, End) of candidate values assigned to
// exactly one worker.
//
// A valid partitioning of a search space [0, N) produces ranges whose union is
// exactly [0, N) with no gaps or overlaps. A Range with Start == End is empty
// and a worker assigned one terminates immediately with StateExhausted.
type Range struct {
	// Start is the first candidate in the range (inclusive).
	Start uint64 `json:"start"`

	// End bounds the range (exclusive).
	End uint64 `json:"end"`
}

// Len returns the number of candidates in the range.
//
// Returns:
//   - uint64: End - Start, or 0 if the range is inverted
func (r Range) Len() uint64 {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start
}

// Contains reports whether the candidate falls inside the range.
//
// Returns:
//   - bool: true if Start <= c < End
func (r Range) Contains(c uint64) bool {
	return c >= r.Start && c < r.End
}

// String returns the interval in [start, end) notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
