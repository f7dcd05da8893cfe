package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPuzzle_Determinism(t *testing.T) {
	p := New([]byte("Some data"), 1000)

	for _, nonce := range []uint64{0, 1, 97, 1 << 32, 1<<64 - 1} {
		first := p.Test(nonce)
		second := p.Test(nonce)
		require.Equal(t, first, second, "nonce %d: repeated Test must agree", nonce)
	}
}

func TestPuzzle_DifficultyBounds(t *testing.T) {
	t.Run("zero difficulty admits nothing", func(t *testing.T) {
		p := New([]byte("payload"), 0)

		for nonce := uint64(0); nonce < 1000; nonce++ {
			require.False(t, p.Test(nonce))
		}
	})

	t.Run("max difficulty admits everything", func(t *testing.T) {
		// The truncated digest is a uint16, so a threshold above its maximum
		// value would accept every nonce; 0xFFFF accepts all but exact-max
		// digests. Spot-check a band of nonces for near-total acceptance.
		p := New([]byte("payload"), 0xFFFF)

		accepted := 0
		for nonce := uint64(0); nonce < 1000; nonce++ {
			if p.Test(nonce) {
				accepted++
			}
		}
		require.Greater(t, accepted, 990)
	})
}

func TestPuzzle_PayloadIsolation(t *testing.T) {
	data := []byte("mutable")
	p := New(data, 500)

	before := p.Test(42)
	data[0] = 'X' // caller mutates their slice
	after := p.Test(42)

	require.Equal(t, before, after, "puzzle must copy the payload at creation")
	require.Equal(t, []byte("mutable"), p.Payload())
}

func TestPuzzle_PayloadChangesOutcome(t *testing.T) {
	// Different payloads should disagree on at least one nonce in a small band
	// at moderate difficulty.
	a := New([]byte("payload-a"), 1<<15)
	b := New([]byte("payload-b"), 1<<15)

	disagreements := 0
	for nonce := uint64(0); nonce < 200; nonce++ {
		if a.Test(nonce) != b.Test(nonce) {
			disagreements++
		}
	}
	require.Positive(t, disagreements)
}

func TestFast_Determinism(t *testing.T) {
	f := NewFast([]byte("Some data"), 1000)

	for _, nonce := range []uint64{0, 1, 12345, 1 << 40} {
		require.Equal(t, f.Test(nonce), f.Test(nonce))
	}
}

func TestFast_ZeroDifficulty(t *testing.T) {
	f := NewFast([]byte("payload"), 0)

	for nonce := uint64(0); nonce < 1000; nonce++ {
		require.False(t, f.Test(nonce))
	}
}

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator(16, 77)

	p, err := gen.Generate()

	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, uint16(77), p.Difficulty())
	require.Len(t, p.Payload(), 16)
}

func TestGenerator_DefaultPayloadSize(t *testing.T) {
	gen := NewGenerator(0, 1)

	p, err := gen.Generate()

	require.NoError(t, err)
	require.Len(t, p.Payload(), DefaultPayloadSize)
}

func TestGenerator_GenerateN(t *testing.T) {
	t.Run("produces independent instances", func(t *testing.T) {
		gen := NewGenerator(32, 1)

		puzzles, err := gen.GenerateN(4)

		require.NoError(t, err)
		require.Len(t, puzzles, 4)

		seen := make(map[string]struct{}, len(puzzles))
		for _, p := range puzzles {
			seen[string(p.Payload())] = struct{}{}
		}
		require.Len(t, seen, 4, "payloads must be distinct")
	})

	t.Run("non-positive count yields nothing", func(t *testing.T) {
		gen := NewGenerator(32, 1)

		puzzles, err := gen.GenerateN(0)

		require.NoError(t, err)
		require.Nil(t, puzzles)
	})
}
