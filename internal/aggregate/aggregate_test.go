package aggregate

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/listdiff/internal/column"
)

func sorted(values ...uint64) column.Column {
	c := column.Column(slices.Clone(values))
	c.Sort()
	return c
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name       string
		left       column.Column
		right      column.Column
		difference uint64
		similarity uint64
	}{
		{
			name:       "canonical",
			left:       column.Column{3, 4, 2, 1, 3, 3},
			right:      column.Column{4, 3, 5, 3, 9, 3},
			difference: 11,
			similarity: 31,
		},
		{
			name:       "identical columns",
			left:       column.Column{7, 7, 1},
			right:      column.Column{7, 7, 1},
			difference: 0,
			similarity: 29,
		},
		{
			name:       "disjoint values",
			left:       column.Column{1, 2, 3},
			right:      column.Column{10, 20, 30},
			difference: 54,
			similarity: 0,
		},
		{
			name:       "single row",
			left:       column.Column{42},
			right:      column.Column{42},
			difference: 0,
			similarity: 42,
		},
		{
			name:       "defaulted zeros",
			left:       column.Column{0, 1},
			right:      column.Column{5, 0},
			difference: 4,
			similarity: 0,
		},
		{
			name:       "right greater than left",
			left:       column.Column{1},
			right:      column.Column{1000000000000},
			difference: 999999999999,
			similarity: 0,
		},
		{
			name:       "empty",
			left:       column.Column{},
			right:      column.Column{},
			difference: 0,
			similarity: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := sorted(tt.left...)
			right := sorted(tt.right...)

			diff, err := SortedDistance(left, right)
			require.NoError(t, err)
			assert.Equal(t, tt.difference, diff)

			sim, err := Similarity(left, right)
			require.NoError(t, err)
			assert.Equal(t, tt.similarity, sim)

			merged, err := MergeSimilarity(left, right)
			require.NoError(t, err)
			assert.Equal(t, tt.similarity, merged)
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	left := sorted(9, 3, 14, 0, 7, 7)
	right := sorted(2, 8, 8, 21, 1, 5)

	ab, err := Distance(left, right)
	require.NoError(t, err)
	ba, err := Distance(right, left)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestDistanceZeroOnlyForEqualColumns(t *testing.T) {
	d, err := Distance(sorted(5, 1, 3), sorted(3, 5, 1))
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = Distance(sorted(5, 1, 3), sorted(3, 5, 2))
	require.NoError(t, err)
	assert.NotZero(t, d)
}

func TestDistanceShift(t *testing.T) {
	left := sorted(1, 4, 6, 10)
	right := sorted(2, 3, 9, 12)
	const k = 5
	n := uint64(len(left))

	base, err := Distance(left, right)
	require.NoError(t, err)

	shifted := make(column.Column, len(right))
	for i, v := range right {
		shifted[i] = v + k
	}
	moved, err := Distance(left, shifted)
	require.NoError(t, err)

	delta := moved - base
	if base > moved {
		delta = base - moved
	}
	assert.LessOrEqual(t, delta, k*n)

	// no pair crosses when every right element already dominates its left partner
	above := sorted(2, 5, 7, 11)
	base, err = Distance(left, above)
	require.NoError(t, err)
	for i := range above {
		above[i] += k
	}
	moved, err = Distance(left, above)
	require.NoError(t, err)
	assert.Equal(t, base+k*n, moved)
}

func TestDistanceLengthMismatch(t *testing.T) {
	_, err := Distance(column.Column{1, 2}, column.Column{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, column.ErrLengthMismatch))
}

func TestSortedDistanceRejectsUnsorted(t *testing.T) {
	_, err := SortedDistance(column.Column{3, 1}, column.Column{1, 3})
	require.ErrorIs(t, err, ErrNotSorted)
	assert.Contains(t, err.Error(), "left")

	_, err = SortedDistance(column.Column{1, 3}, column.Column{3, 1})
	require.ErrorIs(t, err, ErrNotSorted)
	assert.Contains(t, err.Error(), "right")
}

func TestDistanceOverflow(t *testing.T) {
	_, err := Distance(column.Column{0, 0}, column.Column{math.MaxUint64, 1})
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestSimilaritySymmetric(t *testing.T) {
	left := column.Column{3, 4, 2, 1, 3, 3, 8}
	right := column.Column{4, 3, 5, 3, 9, 3, 8, 8}

	ab, err := Similarity(left, right)
	require.NoError(t, err)
	ba, err := Similarity(right, left)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Equal(t, uint64(3*3*3+4*1*1+8*1*2), ab)
}

func TestSimilarityIgnoresOrderAndLength(t *testing.T) {
	sim, err := Similarity(column.Column{5, 2, 5}, column.Column{5})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), sim)
}

func TestSimilarityOverflow(t *testing.T) {
	_, err := Similarity(column.Column{math.MaxUint64, math.MaxUint64}, column.Column{math.MaxUint64})
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = MergeSimilarity(column.Column{math.MaxUint64, math.MaxUint64}, column.Column{math.MaxUint64})
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMergeSimilarityRejectsUnsorted(t *testing.T) {
	_, err := MergeSimilarity(column.Column{2, 1}, column.Column{1, 2})
	assert.ErrorIs(t, err, ErrNotSorted)
}
