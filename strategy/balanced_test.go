package strategy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

func TestBalanced_Split(t *testing.T) {
	t.Run("remainder spread across leading ranges", func(t *testing.T) {
		part := NewBalanced()

		ranges, err := part.Split(10, 3)

		require.NoError(t, err)
		want := []types.Range{
			{Start: 0, End: 4},
			{Start: 4, End: 7},
			{Start: 7, End: 10},
		}
		if diff := cmp.Diff(want, ranges); diff != "" {
			t.Errorf("Split mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("even division matches contiguous", func(t *testing.T) {
		balanced := NewBalanced()
		contiguous := NewContiguous()

		got, err := balanced.Split(100, 4)
		require.NoError(t, err)

		want, err := contiguous.Split(100, 4)
		require.NoError(t, err)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Split mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero workers rejected", func(t *testing.T) {
		part := NewBalanced()

		_, err := part.Split(10, 0)

		require.ErrorIs(t, err, ErrNoWorkers)
	})
}

func TestBalanced_Coverage(t *testing.T) {
	part := NewBalanced()

	bounds := []uint64{1, 2, 7, 97, 999, 65537}
	workerCounts := []int{1, 2, 3, 5, 8, 16, 100}

	for _, n := range bounds {
		for _, w := range workerCounts {
			ranges, err := part.Split(n, w)

			require.NoError(t, err)
			require.Len(t, ranges, w)
			requireCoverage(t, ranges, n)

			// Lengths differ by at most one.
			minLen, maxLen := ranges[0].Len(), ranges[0].Len()
			for _, r := range ranges[1:] {
				minLen = min(minLen, r.Len())
				maxLen = max(maxLen, r.Len())
			}
			require.LessOrEqual(t, maxLen-minLen, uint64(1),
				"bound=%d workers=%d: range lengths must differ by at most one", n, w)
		}
	}
}
