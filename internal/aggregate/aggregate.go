package aggregate

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/leengari/listdiff/internal/column"
)

var (
	// ErrNotSorted is returned when an operation requiring sorted columns gets unsorted input.
	ErrNotSorted = errors.New("column is not sorted")

	// ErrOverflow is returned when a result does not fit in 64 bits.
	ErrOverflow = errors.New("result overflows uint64")
)

// Distance returns the sum of the per-index absolute differences of two
// equal-length columns. Pairing is positional, so the result only means
// "smallest to smallest" when both columns were sorted beforehand.
func Distance(left, right column.Column) (uint64, error) {
	if len(left) != len(right) {
		return 0, fmt.Errorf("distance: %w: %d vs %d", column.ErrLengthMismatch, len(left), len(right))
	}

	var total uint64
	for i, l := range left {
		r := right[i]
		var diff uint64
		if l > r {
			diff = l - r
		} else {
			diff = r - l
		}

		sum, carry := bits.Add64(total, diff, 0)
		if carry != 0 {
			return 0, fmt.Errorf("distance at row %d: %w", i, ErrOverflow)
		}
		total = sum
	}
	return total, nil
}

// SortedDistance is Distance with the sort order of both columns checked first.
func SortedDistance(left, right column.Column) (uint64, error) {
	if err := requireSorted(left, right); err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	return Distance(left, right)
}

// Similarity returns the sum over each distinct left value v of
// v * countLeft(v) * countRight(v). The columns may have any length and order.
func Similarity(left, right column.Column) (uint64, error) {
	leftCounts := left.Counts()
	rightCounts := right.Counts()

	var score uint64
	for v, cl := range leftCounts {
		cr, ok := rightCounts[v]
		if !ok {
			continue
		}
		var err error
		if score, err = addWeighted(score, v, cl, cr); err != nil {
			return 0, fmt.Errorf("similarity for value %d: %w", v, err)
		}
	}
	return score, nil
}

// MergeSimilarity computes the same score as Similarity by walking two sorted
// columns side by side, without building count maps.
func MergeSimilarity(left, right column.Column) (uint64, error) {
	if err := requireSorted(left, right); err != nil {
		return 0, fmt.Errorf("similarity: %w", err)
	}

	var score uint64
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch {
		case left[i] < right[j]:
			i++
		case left[i] > right[j]:
			j++
		default:
			v := left[i]
			cl := runLength(left, i)
			cr := runLength(right, j)
			i += int(cl)
			j += int(cr)

			var err error
			if score, err = addWeighted(score, v, cl, cr); err != nil {
				return 0, fmt.Errorf("similarity for value %d: %w", v, err)
			}
		}
	}
	return score, nil
}

// runLength counts how many consecutive elements starting at i equal c[i]
func runLength(c column.Column, i int) uint64 {
	n := uint64(0)
	for k := i; k < len(c) && c[k] == c[i]; k++ {
		n++
	}
	return n
}

// addWeighted returns acc + v*cl*cr, failing instead of wrapping around
func addWeighted(acc, v, cl, cr uint64) (uint64, error) {
	hi, p := bits.Mul64(v, cl)
	if hi != 0 {
		return 0, ErrOverflow
	}
	hi, p = bits.Mul64(p, cr)
	if hi != 0 {
		return 0, ErrOverflow
	}
	sum, carry := bits.Add64(acc, p, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

func requireSorted(left, right column.Column) error {
	if !left.IsSorted() {
		return fmt.Errorf("%s %w", column.SideLeft, ErrNotSorted)
	}
	if !right.IsSorted() {
		return fmt.Errorf("%s %w", column.SideRight, ErrNotSorted)
	}
	return nil
}
