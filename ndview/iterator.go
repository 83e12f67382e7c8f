// SPDX-License-Identifier: MIT

// Package ndview - Enumerator (BoundsIterator).
//
// Purpose:
//   - Cursor over every coordinate of a Bounds in row-major order (the last
//     dimension varies fastest).
//   - Two sentinel positions are ordinary coordinate values, not flags:
//     off-the-end   {e0-1, ..., e[R-2]-1, e[R-1]}
//     before-start  {0, ..., 0, -1}
//     so equality, ordering and differences stay plain integer arithmetic.
//
// Position model:
//   - A cursor is a mixed-radix number: digit d has radix e[d], innermost digit
//     first, plus an overflow digit k. Contained coordinates have k == 0,
//     off-the-end is k == 1 with all digits 0 (the value TotalCount()), and
//     before-start is k == -1 with all digits e[d]-1 (the value -1).
//   - Jumps are positional additions on that number. A result whose overflow
//     digit is not one of the three shapes above is out of range.
//
// Failure atomicity:
//   - Every mutating method computes on a copy and commits only on success.
//
// Complexity quicksheet:
//   - Next/Prev: amortized O(1), worst O(R). Advance/Retreat/Sub/Compare: O(R).

package ndview

import "fmt"

// BoundsIterator enumerates the coordinates of a captured Bounds.
// Obtain one from Bounds.Begin or Bounds.End; the zero value is not usable.
type BoundsIterator[R Rank] struct {
	b   Bounds[R] // scan bound, captured by value
	cur Index[R]  // current coordinate, possibly a sentinel
}

// Bounds returns the captured extent.
func (it BoundsIterator[R]) Bounds() Bounds[R] { return it.b }

// Position returns the raw cursor, sentinel values included.
func (it BoundsIterator[R]) Position() Index[R] { return it.cur }

// IsEnd reports whether the cursor is at the off-the-end sentinel.
func (it BoundsIterator[R]) IsEnd() bool { return it.cur.c == it.b.endIndex().c }

// IsBeforeStart reports whether the cursor is at the before-the-start sentinel.
func (it BoundsIterator[R]) IsBeforeStart() bool { return it.cur.c == it.b.beforeIndex().c }

// Index dereferences the cursor. The result is a copy: it stays valid after
// the iterator moves.
// Returns ErrSentinel at either sentinel position.
func (it BoundsIterator[R]) Index() (Index[R], error) {
	if !it.b.Contains(it.cur) {
		return Index[R]{}, fmt.Errorf("BoundsIterator.Index() at %v: %w", it.cur, ErrSentinel)
	}

	return it.cur, nil
}

// Equal reports whether both enumerators share the extent and the position.
func (it BoundsIterator[R]) Equal(o BoundsIterator[R]) bool {
	return it.b.e == o.b.e && it.cur.c == o.cur.c
}

// Next advances by one coordinate (++).
// MAIN DESCRIPTION:
//   - Increment the innermost dimension; on reaching its extent, reset it to 0
//     and carry into the next outer one. A carry out of dimension 0 lands on
//     the off-the-end sentinel.
//
// Errors:
//   - ErrSentinel when already off-the-end (no wrap-around).
//   - ErrEmptyBounds for an empty extent.
//
// Complexity:
//   - Amortized O(1), worst O(R).
func (it *BoundsIterator[R]) Next() error {
	if it.b.Empty() {
		return fmt.Errorf("BoundsIterator.Next() over %v: %w", it.b, ErrEmptyBounds)
	}
	if it.IsEnd() {
		return fmt.Errorf("BoundsIterator.Next() at %v: %w", it.cur, ErrSentinel)
	}
	cur := it.cur
	for d := len(cur.c) - 1; d >= 0; d-- {
		cur.c[d]++
		if cur.c[d] < it.b.e[d] {
			it.cur = cur

			return nil
		}
		cur.c[d] = 0
	}
	it.cur = it.b.endIndex()

	return nil
}

// Prev steps back by one coordinate (--).
// MAIN DESCRIPTION:
//   - Decrement the innermost dimension; below 0 it becomes e[d]-1 and borrows
//     from the next outer one. A borrow out of dimension 0 lands on the
//     before-the-start sentinel.
//
// Errors:
//   - ErrSentinel when already before-the-start.
//   - ErrEmptyBounds for an empty extent.
func (it *BoundsIterator[R]) Prev() error {
	if it.b.Empty() {
		return fmt.Errorf("BoundsIterator.Prev() over %v: %w", it.b, ErrEmptyBounds)
	}
	if it.IsBeforeStart() {
		return fmt.Errorf("BoundsIterator.Prev() at %v: %w", it.cur, ErrSentinel)
	}
	cur := it.cur
	for d := len(cur.c) - 1; d >= 0; d-- {
		cur.c[d]--
		if cur.c[d] >= 0 {
			it.cur = cur

			return nil
		}
		cur.c[d] = it.b.e[d] - 1
	}
	it.cur = it.b.beforeIndex()

	return nil
}

// Advance jumps forward by n coordinates (+=); n may be negative.
// MAIN DESCRIPTION:
//   - Positional addition with radices e[d], innermost digit first:
//     new digit = (old + carry) mod e[d], carry out = (old + carry) div e[d],
//     both floored.
//
// Errors:
//   - ErrOverflow when the target lies outside [-1, TotalCount()], that is
//     beyond either sentinel. The iterator is unchanged.
//   - ErrEmptyBounds for an empty extent and n != 0.
//
// Complexity:
//   - O(R).
func (it *BoundsIterator[R]) Advance(n int) error {
	if n == 0 {
		return nil
	}
	if it.b.Empty() {
		return fmt.Errorf("BoundsIterator.Advance(%d) over %v: %w", n, it.b, ErrEmptyBounds)
	}
	k, x := it.digits()
	carry := n
	for d := len(x) - 1; d >= 0; d-- {
		v, ok := addChecked(x[d], carry)
		if !ok {
			return fmt.Errorf("BoundsIterator.Advance(%d) at %v: %w", n, it.cur, ErrOverflow)
		}
		carry, x[d] = floorDivMod(v, it.b.e[d])
	}
	k, ok := addChecked(k, carry)
	if !ok {
		return fmt.Errorf("BoundsIterator.Advance(%d) at %v: %w", n, it.cur, ErrOverflow)
	}
	cur, ok := it.settle(k, x)
	if !ok {
		return fmt.Errorf("BoundsIterator.Advance(%d) at %v: %w", n, it.cur, ErrOverflow)
	}
	it.cur = cur

	return nil
}

// Retreat jumps backward by n coordinates (-=); n may be negative.
// MAIN DESCRIPTION:
//   - Subtraction as addition on the radix complement. Every digit x[d] is
//     replaced by e[d]-x[d], n is added, and the digits are complemented back.
//   - The complemented digits live in [1, e[d]] rather than [0, e[d]), and the
//     addition keeps them there: with that digit range e[d]-x[d] is an exact
//     complement of the whole number, which is what keeps Retreat(n) equal to
//     Advance(-n) and to n calls of Prev, sentinels included.
//
// Errors:
//   - ErrOverflow when the target lies beyond either sentinel. The iterator is
//     unchanged.
//   - ErrEmptyBounds for an empty extent and n != 0.
//
// Complexity:
//   - O(R).
func (it *BoundsIterator[R]) Retreat(n int) error {
	if n == 0 {
		return nil
	}
	if it.b.Empty() {
		return fmt.Errorf("BoundsIterator.Retreat(%d) over %v: %w", n, it.b, ErrEmptyBounds)
	}
	k, x := it.digits()
	var z R
	for d := 0; d < len(x); d++ {
		z[d] = it.b.e[d] - x[d]
	}
	kz := -k
	carry := n
	for d := len(z) - 1; d >= 0; d-- {
		v, ok := addChecked(z[d], carry)
		if ok {
			v, ok = addChecked(v, -1)
		}
		if !ok {
			return fmt.Errorf("BoundsIterator.Retreat(%d) at %v: %w", n, it.cur, ErrOverflow)
		}
		carry, z[d] = floorDivMod(v, it.b.e[d])
		z[d]++
	}
	kz, ok := addChecked(kz, carry)
	if !ok {
		return fmt.Errorf("BoundsIterator.Retreat(%d) at %v: %w", n, it.cur, ErrOverflow)
	}
	for d := 0; d < len(x); d++ {
		x[d] = it.b.e[d] - z[d]
	}
	cur, ok := it.settle(-kz, x)
	if !ok {
		return fmt.Errorf("BoundsIterator.Retreat(%d) at %v: %w", n, it.cur, ErrOverflow)
	}
	it.cur = cur

	return nil
}

// Sub returns the signed number of Next steps that lead from o to it (a - b).
// Returns ErrBoundsMismatch when the enumerators cover different extents.
// Complexity: O(R).
func (it BoundsIterator[R]) Sub(o BoundsIterator[R]) (int, error) {
	if it.b.e != o.b.e {
		return 0, fmt.Errorf("BoundsIterator.Sub(%v, %v): %w", it.b, o.b, ErrBoundsMismatch)
	}

	return it.linear() - o.linear(), nil
}

// Compare returns -1, 0 or +1 as it precedes, equals or follows o.
// Returns ErrBoundsMismatch when the enumerators cover different extents.
func (it BoundsIterator[R]) Compare(o BoundsIterator[R]) (int, error) {
	diff, err := it.Sub(o)
	if err != nil {
		return 0, err
	}
	switch {
	case diff < 0:
		return -1, nil
	case diff > 0:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports whether it precedes o, that is o - it > 0.
func (it BoundsIterator[R]) Less(o BoundsIterator[R]) (bool, error) {
	diff, err := o.Sub(it)
	if err != nil {
		return false, err
	}

	return diff > 0, nil
}

// String renders the cursor and its extent, e.g. "{1, 2} in {2, 3}".
func (it BoundsIterator[R]) String() string {
	return it.cur.String() + " in " + it.b.String()
}

// linear returns the position in [-1, TotalCount()].
func (it BoundsIterator[R]) linear() int {
	switch {
	case it.IsEnd():
		return it.b.TotalCount()
	case it.IsBeforeStart():
		return -1
	default:
		return it.b.ravel(it.cur)
	}
}

// digits decomposes the cursor into its overflow digit and mixed-radix digits.
// Requires a non-empty extent.
func (it BoundsIterator[R]) digits() (k int, x R) {
	switch {
	case it.IsEnd():
		return 1, x
	case it.IsBeforeStart():
		for d := 0; d < len(x); d++ {
			x[d] = it.b.e[d] - 1
		}

		return -1, x
	default:
		return 0, it.cur.c
	}
}

// settle maps a digit decomposition back to a cursor value. It reports false
// when the number lies outside [-1, TotalCount()].
func (it BoundsIterator[R]) settle(k int, x R) (Index[R], bool) {
	switch k {
	case 0:
		return Index[R]{c: x}, true
	case 1:
		for d := 0; d < len(x); d++ {
			if x[d] != 0 {
				return Index[R]{}, false
			}
		}

		return it.b.endIndex(), true
	case -1:
		for d := 0; d < len(x); d++ {
			if x[d] != it.b.e[d]-1 {
				return Index[R]{}, false
			}
		}

		return it.b.beforeIndex(), true
	default:
		return Index[R]{}, false
	}
}
