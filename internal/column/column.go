package column

import (
	"errors"
	"fmt"
	"slices"
)

// ErrLengthMismatch is returned when the two columns of a pair differ in length.
var ErrLengthMismatch = errors.New("columns differ in length")

// Side identifies which of the two input columns a value belongs to
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Column is an ordered sequence of non-negative integers read from one side of the input
type Column []uint64

func (c Column) Len() int { return len(c) }

// Sort orders the column ascending in place
func (c Column) Sort() {
	slices.Sort(c)
}

// IsSorted reports whether the column is in non-decreasing order
func (c Column) IsSorted() bool {
	return slices.IsSorted(c)
}

// Counts returns the multiplicity of every value in the column
func (c Column) Counts() map[uint64]uint64 {
	counts := make(map[uint64]uint64, len(c))
	for _, v := range c {
		counts[v]++
	}
	return counts
}

// Pair holds the left and right columns parsed from one input.
// Both columns always have the same length.
type Pair struct {
	Left  Column
	Right Column
}

// NewPair allocates an empty pair with room for n rows
func NewPair(n int) *Pair {
	return &Pair{
		Left:  make(Column, 0, n),
		Right: make(Column, 0, n),
	}
}

// Append adds one row, keeping both columns the same length
func (p *Pair) Append(left, right uint64) {
	p.Left = append(p.Left, left)
	p.Right = append(p.Right, right)
}

// Rows returns the number of rows in the pair
func (p *Pair) Rows() int {
	return len(p.Left)
}

// Sort orders both columns ascending in place
func (p *Pair) Sort() {
	p.Left.Sort()
	p.Right.Sort()
}

// Validate checks that both columns have the same length
func (p *Pair) Validate() error {
	if len(p.Left) != len(p.Right) {
		return fmt.Errorf("%w: %s=%d %s=%d", ErrLengthMismatch,
			SideLeft, len(p.Left), SideRight, len(p.Right))
	}
	return nil
}
