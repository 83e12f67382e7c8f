// SPDX-License-Identifier: MIT

// Package ndview - Coordinate (Index).
//
// Purpose:
//   - A fixed-length integer tuple naming one point of an R-dimensional space.
//   - Dimension 0 is the outermost (slowest varying) dimension.
//   - Stored in the array type R itself: no heap, no runtime length.
//
// Complexity quicksheet:
//   - Every operation is O(R) time and O(1) space.

package ndview

import (
	"fmt"
	"strconv"
	"strings"
)

// Index is a coordinate of rank len(R). The zero value is the origin.
type Index[R Rank] struct {
	c R
}

// NewIndex builds an Index from exactly len(R) components.
// Returns ErrRankMismatch when the count differs from the rank.
//
// Example:
//
//	i, err := ndview.NewIndex[ndview.R2](1, 2)
func NewIndex[R Rank](vals ...int) (Index[R], error) {
	var i Index[R]
	if len(vals) != len(i.c) {
		return Index[R]{}, fmt.Errorf("NewIndex(%d values, rank %d): %w", len(vals), len(i.c), ErrRankMismatch)
	}
	for d := 0; d < len(i.c); d++ {
		i.c[d] = vals[d]
	}

	return i, nil
}

// MustIndex is NewIndex for call sites with a literal component list.
// It panics on rank mismatch.
func MustIndex[R Rank](vals ...int) Index[R] {
	i, err := NewIndex[R](vals...)
	if err != nil {
		panic(err)
	}

	return i
}

// IndexOf wraps a fixed array; the rank is inferred from the array type.
func IndexOf[R Rank](c R) Index[R] {
	return Index[R]{c: c}
}

// Rank returns the number of dimensions.
func (i Index[R]) Rank() int { return len(i.c) }

// Array returns a copy of the components.
func (i Index[R]) Array() R { return i.c }

// At returns component d.
// Returns ErrDimension when d is outside [0, rank).
func (i Index[R]) At(d int) (int, error) {
	if d < 0 || d >= len(i.c) {
		return 0, fmt.Errorf("Index.At(%d): %w", d, ErrDimension)
	}

	return i.c[d], nil
}

// Set assigns component d.
// Returns ErrDimension when d is outside [0, rank); the index is unchanged.
func (i *Index[R]) Set(d, v int) error {
	if d < 0 || d >= len(i.c) {
		return fmt.Errorf("Index.Set(%d): %w", d, ErrDimension)
	}
	i.c[d] = v

	return nil
}

// Equal reports whether all components are equal.
func (i Index[R]) Equal(o Index[R]) bool { return i.c == o.c }

// Add returns the element-wise sum i+o.
func (i Index[R]) Add(o Index[R]) Index[R] {
	for d := 0; d < len(i.c); d++ {
		i.c[d] += o.c[d]
	}

	return i
}

// Sub returns the element-wise difference i-o.
func (i Index[R]) Sub(o Index[R]) Index[R] {
	for d := 0; d < len(i.c); d++ {
		i.c[d] -= o.c[d]
	}

	return i
}

// Neg flips the sign of every component.
func (i Index[R]) Neg() Index[R] {
	for d := 0; d < len(i.c); d++ {
		i.c[d] = -i.c[d]
	}

	return i
}

// Scale multiplies every component by k.
func (i Index[R]) Scale(k int) Index[R] {
	for d := 0; d < len(i.c); d++ {
		i.c[d] *= k
	}

	return i
}

// Div divides every component by k, truncating toward zero.
// Returns ErrDivideByZero when k == 0.
func (i Index[R]) Div(k int) (Index[R], error) {
	if k == 0 {
		return i, fmt.Errorf("Index.Div(%v, 0): %w", i, ErrDivideByZero)
	}
	for d := 0; d < len(i.c); d++ {
		i.c[d] /= k
	}

	return i, nil
}

// String renders the index as "{a, b, c}".
func (i Index[R]) String() string {
	return formatTuple(i.c)
}

// Inc returns the successor of a rank-1 index.
// Only rank 1 has one: for higher ranks use a BoundsIterator.
func Inc(i Index[R1]) Index[R1] {
	i.c[0]++

	return i
}

// Dec returns the predecessor of a rank-1 index.
func Dec(i Index[R1]) Index[R1] {
	i.c[0]--

	return i
}

// formatTuple renders the components of a coordinate or extent.
func formatTuple[R Rank](c R) string {
	var b strings.Builder
	b.WriteByte('{')
	for d := 0; d < len(c); d++ {
		if d > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(c[d]))
	}
	b.WriteByte('}')

	return b.String()
}
