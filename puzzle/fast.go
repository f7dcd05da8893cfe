package puzzle

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

// Fast is an xxh3-based puzzle variant.
//
// It follows the same truncate-and-compare contract as Puzzle but hashes with
// the non-cryptographic xxh3 function, which is roughly an order of magnitude
// cheaper than SHA-256 per candidate. Use it for load tests and benchmarks
// where proof-of-work strength is irrelevant.
type Fast struct {
	payload    []byte
	difficulty uint16
}

var _ types.Predicate = (*Fast)(nil)

// NewFast creates a new xxh3 puzzle.
//
// Parameters:
//   - payload: Opaque data the nonce is tested against (copied)
//   - difficulty: Threshold for the truncated digest; lower is harder
//
// Returns:
//   - *Fast: Initialized puzzle instance
func NewFast(payload []byte, difficulty uint16) *Fast {
	buf := make([]byte, len(payload))
	copy(buf, payload)

	return &Fast{payload: buf, difficulty: difficulty}
}

// Difficulty returns the puzzle's threshold.
func (f *Fast) Difficulty() uint16 {
	return f.difficulty
}

// Test reports whether the nonce solves the puzzle.
//
// The top 16 bits of the 64-bit xxh3 digest of payload||nonce are compared
// against the difficulty threshold.
func (f *Fast) Test(candidate uint64) bool {
	buf := make([]byte, len(f.payload)+8)
	copy(buf, f.payload)
	binary.BigEndian.PutUint64(buf[len(f.payload):], candidate)

	return uint16(xxh3.Hash(buf)>>48) < f.difficulty
}
