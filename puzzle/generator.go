package puzzle

import (
	"crypto/rand"
	"fmt"
)

// DefaultPayloadSize is the payload length produced by a zero-value generator
// configuration.
const DefaultPayloadSize = 32

// Generator produces random puzzle instances.
//
// Payloads are drawn from crypto/rand, so two generated puzzles are
// independent problem instances with overwhelming probability. The generator
// itself is stateless apart from its settings and safe for concurrent use.
type Generator struct {
	payloadSize int
	difficulty  uint16
}

// NewGenerator creates a puzzle generator.
//
// Parameters:
//   - payloadSize: Length of random payloads in bytes (0 = DefaultPayloadSize)
//   - difficulty: Difficulty assigned to generated puzzles
//
// Returns:
//   - *Generator: Initialized generator
//
// Example:
//
//	gen := puzzle.NewGenerator(32, 100)
//	p, err := gen.Generate()
func NewGenerator(payloadSize int, difficulty uint16) *Generator {
	if payloadSize <= 0 {
		payloadSize = DefaultPayloadSize
	}

	return &Generator{payloadSize: payloadSize, difficulty: difficulty}
}

// Generate creates one puzzle with a fresh random payload.
//
// Returns:
//   - *Puzzle: Newly generated puzzle
//   - error: Entropy source failure
func (g *Generator) Generate() (*Puzzle, error) {
	payload := make([]byte, g.payloadSize)
	if _, err := rand.Read(payload); err != nil {
		return nil, fmt.Errorf("failed to generate puzzle payload: %w", err)
	}

	return New(payload, g.difficulty), nil
}

// GenerateN creates n independent puzzles.
//
// Parameters:
//   - n: Number of puzzles to generate
//
// Returns:
//   - []*Puzzle: Generated puzzles (nil if n <= 0)
//   - error: Entropy source failure; no partial batch is returned
func (g *Generator) GenerateN(n int) ([]*Puzzle, error) {
	if n <= 0 {
		return nil, nil
	}

	puzzles := make([]*Puzzle, 0, n)
	for range n {
		p, err := g.Generate()
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, p)
	}

	return puzzles, nil
}
