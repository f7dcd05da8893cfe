package puzzle

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

// Puzzle is a SHA-256 proof-of-work style problem instance.
//
// A nonce solves the puzzle when the first two bytes of
// SHA-256(payload || nonce), read as a big-endian uint16, are below the
// difficulty threshold. The instance is read-only after creation and safe to
// share across workers without synchronization.
type Puzzle struct {
	payload    []byte
	difficulty uint16
}

var _ types.Predicate = (*Puzzle)(nil)

// New creates a new SHA-256 puzzle.
//
// The payload is copied so later mutations of the caller's slice cannot
// change the instance under a running solve.
//
// Parameters:
//   - payload: Opaque data the nonce is tested against
//   - difficulty: Threshold for the truncated digest; lower is harder.
//     A difficulty of 0 admits no solution.
//
// Returns:
//   - *Puzzle: Initialized puzzle instance
//
// Example:
//
//	p := puzzle.New([]byte("Some data"), 1)
//	s, err := solver.New(&cfg, p, strategy.NewContiguous())
func New(payload []byte, difficulty uint16) *Puzzle {
	buf := make([]byte, len(payload))
	copy(buf, payload)

	return &Puzzle{payload: buf, difficulty: difficulty}
}

// Difficulty returns the puzzle's threshold.
func (p *Puzzle) Difficulty() uint16 {
	return p.difficulty
}

// Payload returns a copy of the puzzle's payload.
func (p *Puzzle) Payload() []byte {
	buf := make([]byte, len(p.payload))
	copy(buf, p.payload)

	return buf
}

// Test reports whether the nonce solves the puzzle.
//
// The check is pure and deterministic: the same nonce always yields the same
// result for a given instance.
//
// Parameters:
//   - candidate: Nonce to test
//
// Returns:
//   - bool: true if the truncated digest is below the difficulty threshold
func (p *Puzzle) Test(candidate uint64) bool {
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], candidate)

	h := sha256.New()
	h.Write(p.payload)
	h.Write(nonce[:])
	digest := h.Sum(nil)

	return binary.BigEndian.Uint16(digest[:2]) < p.difficulty
}
