// SPDX-License-Identifier: MIT

// Package ndview - Extent (Bounds).
//
// Purpose:
//   - Per-dimension sizes of an addressable region, same dimension order as Index.
//   - Contains is the only bounds test in the package; every view delegates to it.
//   - Canonical row-major strides and mixed-radix linearization derive from here.
//
// Invariants:
//   - Every component is >= 0 and the product of all components fits in int.
//     Constructors and arithmetic both enforce this, so TotalCount never overflows.
//   - Any zero component denotes an empty region.
//
// Complexity quicksheet:
//   - Construction, Contains, Strides, Linear, Unlinear: O(R).
//   - Partition: O(parts).

package ndview

import (
	"fmt"
	"iter"
)

// Bounds is an extent of rank len(R).
type Bounds[R Rank] struct {
	e R
}

// NewBounds builds an extent from exactly len(R) non-negative components.
// MAIN DESCRIPTION:
//   - Validates count, sign and product size before returning.
//
// Errors:
//   - ErrRankMismatch when len(vals) differs from the rank.
//   - ErrNegativeExtent when a component is negative.
//   - ErrOverflow when the product does not fit in int.
func NewBounds[R Rank](vals ...int) (Bounds[R], error) {
	var b Bounds[R]
	if len(vals) != len(b.e) {
		return Bounds[R]{}, fmt.Errorf("NewBounds(%d values, rank %d): %w", len(vals), len(b.e), ErrRankMismatch)
	}
	for d := 0; d < len(b.e); d++ {
		b.e[d] = vals[d]
	}
	if err := validateExtent(b.e); err != nil {
		return Bounds[R]{}, fmt.Errorf("NewBounds%v: %w", vals, err)
	}

	return b, nil
}

// BoundsOf wraps a fixed array; the rank is inferred from the array type.
// Errors are those of NewBounds other than ErrRankMismatch.
func BoundsOf[R Rank](e R) (Bounds[R], error) {
	if err := validateExtent(e); err != nil {
		return Bounds[R]{}, fmt.Errorf("BoundsOf(%s): %w", formatTuple(e), err)
	}

	return Bounds[R]{e: e}, nil
}

// MustBounds is NewBounds for literal extents. It panics on invalid input.
func MustBounds[R Rank](vals ...int) Bounds[R] {
	b, err := NewBounds[R](vals...)
	if err != nil {
		panic(err)
	}

	return b
}

// Rank returns the number of dimensions.
func (b Bounds[R]) Rank() int { return len(b.e) }

// Array returns a copy of the components.
func (b Bounds[R]) Array() R { return b.e }

// Dim returns the size of dimension d.
// Returns ErrDimension when d is outside [0, rank).
func (b Bounds[R]) Dim(d int) (int, error) {
	if d < 0 || d >= len(b.e) {
		return 0, fmt.Errorf("Bounds.Dim(%d): %w", d, ErrDimension)
	}

	return b.e[d], nil
}

// Equal reports whether both extents have the same size in every dimension.
func (b Bounds[R]) Equal(o Bounds[R]) bool { return b.e == o.e }

// TotalCount returns the number of addressable points: the product of all
// components, 0 when any component is 0.
// Complexity: O(R).
func (b Bounds[R]) TotalCount() int {
	n := 1
	for d := 0; d < len(b.e); d++ {
		n *= b.e[d]
	}

	return n
}

// Empty reports whether the extent addresses no point.
func (b Bounds[R]) Empty() bool {
	for d := 0; d < len(b.e); d++ {
		if b.e[d] == 0 {
			return true
		}
	}

	return false
}

// Contains reports whether 0 <= i[d] < b[d] holds for every dimension d.
// Complexity: O(R).
func (b Bounds[R]) Contains(i Index[R]) bool {
	for d := 0; d < len(b.e); d++ {
		if i.c[d] < 0 || i.c[d] >= b.e[d] {
			return false
		}
	}

	return true
}

// Translate returns b+i (the extent grown by i per dimension).
// Returns ErrNegativeExtent or ErrOverflow; b itself is never modified.
func (b Bounds[R]) Translate(i Index[R]) (Bounds[R], error) {
	var ok bool
	r := b
	for d := 0; d < len(r.e); d++ {
		if r.e[d], ok = addChecked(b.e[d], i.c[d]); !ok {
			return b, fmt.Errorf("Bounds.Translate(%v, %v): %w", b, i, ErrOverflow)
		}
	}
	if err := validateExtent(r.e); err != nil {
		return b, fmt.Errorf("Bounds.Translate(%v, %v): %w", b, i, err)
	}

	return r, nil
}

// Shrink returns b-i, the residual extent after moving the origin to i.
// A negative result is reported as ErrNegativeExtent, not clamped.
func (b Bounds[R]) Shrink(i Index[R]) (Bounds[R], error) {
	r := b
	for d := 0; d < len(r.e); d++ {
		r.e[d] = b.e[d] - i.c[d]
		if i.c[d] < 0 && r.e[d] < b.e[d] {
			return b, fmt.Errorf("Bounds.Shrink(%v, %v): %w", b, i, ErrOverflow)
		}
	}
	if err := validateExtent(r.e); err != nil {
		return b, fmt.Errorf("Bounds.Shrink(%v, %v): %w", b, i, err)
	}

	return r, nil
}

// Scale multiplies every component by k.
// Returns ErrNegativeExtent for k < 0, ErrOverflow when the result does not fit.
func (b Bounds[R]) Scale(k int) (Bounds[R], error) {
	if k < 0 {
		return b, fmt.Errorf("Bounds.Scale(%v, %d): %w", b, k, ErrNegativeExtent)
	}
	var ok bool
	r := b
	for d := 0; d < len(r.e); d++ {
		if r.e[d], ok = mulChecked(b.e[d], k); !ok {
			return b, fmt.Errorf("Bounds.Scale(%v, %d): %w", b, k, ErrOverflow)
		}
	}
	if err := validateExtent(r.e); err != nil {
		return b, fmt.Errorf("Bounds.Scale(%v, %d): %w", b, k, err)
	}

	return r, nil
}

// Div divides every component by k, truncating toward zero.
// Returns ErrDivideByZero for k == 0 and ErrNegativeExtent for k < 0.
func (b Bounds[R]) Div(k int) (Bounds[R], error) {
	if k == 0 {
		return b, fmt.Errorf("Bounds.Div(%v, 0): %w", b, ErrDivideByZero)
	}
	if k < 0 {
		return b, fmt.Errorf("Bounds.Div(%v, %d): %w", b, k, ErrNegativeExtent)
	}
	r := b
	for d := 0; d < len(r.e); d++ {
		r.e[d] /= k
	}
	if err := validateExtent(r.e); err != nil {
		return b, fmt.Errorf("Bounds.Div(%v, %d): %w", b, k, err)
	}

	return r, nil
}

// Strides returns the canonical row-major strides of the extent:
// s[R-1] = 1 and s[d] = s[d+1]*b[d+1].
// Complexity: O(R).
func (b Bounds[R]) Strides() Index[R] {
	var s Index[R]
	n := len(b.e)
	s.c[n-1] = 1
	for d := n - 2; d >= 0; d-- {
		s.c[d] = s.c[d+1] * b.e[d+1]
	}

	return s
}

// Linear maps a contained index to its row-major position in [0, TotalCount()).
// Returns ErrOutOfRange for indexes outside the extent.
// Complexity: O(R).
func (b Bounds[R]) Linear(i Index[R]) (int, error) {
	if !b.Contains(i) {
		return 0, fmt.Errorf("Bounds.Linear(%v) in %v: %w", i, b, ErrOutOfRange)
	}

	return b.ravel(i), nil
}

// Unlinear is the inverse of Linear.
// Returns ErrOutOfRange for n outside [0, TotalCount()).
// Complexity: O(R).
func (b Bounds[R]) Unlinear(n int) (Index[R], error) {
	if n < 0 || n >= b.TotalCount() {
		return Index[R]{}, fmt.Errorf("Bounds.Unlinear(%d) in %v: %w", n, b, ErrOutOfRange)
	}

	return b.unravel(n), nil
}

// ravel computes the mixed-radix value of i without a bounds check.
func (b Bounds[R]) ravel(i Index[R]) int {
	n := 0
	for d := 0; d < len(b.e); d++ {
		n = n*b.e[d] + i.c[d]
	}

	return n
}

// unravel decomposes n into mixed-radix digits, innermost digit first.
func (b Bounds[R]) unravel(n int) Index[R] {
	var i Index[R]
	for d := len(b.e) - 1; d >= 0; d-- {
		i.c[d] = n % b.e[d]
		n /= b.e[d]
	}

	return i
}

// Begin returns an enumerator at the first coordinate in row-major order.
// For an empty extent Begin equals End.
func (b Bounds[R]) Begin() BoundsIterator[R] {
	if b.Empty() {
		return b.End()
	}

	return BoundsIterator[R]{b: b}
}

// End returns the off-the-end enumerator: every dimension but the last at
// b[d]-1, the last one at b[R-1]. This holds for empty extents too.
func (b Bounds[R]) End() BoundsIterator[R] {
	return BoundsIterator[R]{b: b, cur: b.endIndex()}
}

// All yields every contained coordinate in row-major order (last dimension
// fastest). The yielded Index is a value: retaining it is safe.
//
// Example:
//
//	for i := range b.All() {
//	    ...
//	}
func (b Bounds[R]) All() iter.Seq[Index[R]] {
	return func(yield func(Index[R]) bool) {
		if b.Empty() {
			return
		}
		var i Index[R]
		last := len(b.e) - 1
	next:
		for {
			if !yield(i) {
				return
			}
			for d := last; d >= 0; d-- {
				i.c[d]++
				if i.c[d] < b.e[d] {
					continue next
				}
				i.c[d] = 0
			}

			return
		}
	}
}

// Partition splits the extent along dimension 0 into at most parts disjoint
// regions that together cover it. Region sizes differ by at most one row.
// MAIN DESCRIPTION:
//   - Used to hand disjoint sections of one view to separate workers.
//
// Behavior highlights:
//   - parts < 1 is treated as 1; parts larger than b[0] yields b[0] regions.
//   - An empty extent yields no region.
//
// Complexity:
//   - Time O(parts*R), Space O(parts).
func (b Bounds[R]) Partition(parts int) []Region[R] {
	if b.Empty() {
		return nil
	}
	rows := b.e[0]
	if parts < 1 {
		parts = 1
	}
	if parts > rows {
		parts = rows
	}
	out := make([]Region[R], 0, parts)
	base, extra := rows/parts, rows%parts
	start := 0
	for p := 0; p < parts; p++ {
		n := base
		if p < extra {
			n++
		}
		var reg Region[R]
		reg.Origin.c[0] = start
		reg.Extent = b
		reg.Extent.e[0] = n
		out = append(out, reg)
		start += n
	}

	return out
}

// String renders the extent as "{a, b, c}".
func (b Bounds[R]) String() string {
	return formatTuple(b.e)
}

// endIndex returns the off-the-end sentinel coordinate.
func (b Bounds[R]) endIndex() Index[R] {
	var i Index[R]
	last := len(b.e) - 1
	for d := 0; d < last; d++ {
		i.c[d] = b.e[d] - 1
	}
	i.c[last] = b.e[last]

	return i
}

// beforeIndex returns the before-the-start sentinel coordinate.
func (b Bounds[R]) beforeIndex() Index[R] {
	var i Index[R]
	i.c[len(b.e)-1] = -1

	return i
}
