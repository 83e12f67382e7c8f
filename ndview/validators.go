// SPDX-License-Identifier: MIT
// Package: ndview
//
// Purpose:
//   - Single source of truth for shape checks and overflow-checked integer
//     arithmetic used by extents, enumerators and strided views.
//   - Return plain sentinel errors; call sites wrap them with method context.
//
// Determinism & Performance:
//   - All helpers are pure and allocate nothing.

package ndview

import "math"

// addChecked returns a+b and false when the sum overflows int.
func addChecked(a, b int) (int, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}

	return c, true
}

// mulChecked returns a*b and false when the product overflows int.
func mulChecked(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}

// floorDivMod divides a by b (b > 0) rounding toward negative infinity, so
// the remainder is always in [0, b).
func floorDivMod(a, b int) (q, r int) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}

	return q, r
}

// validateExtent checks that every component of e is non-negative and that
// their product fits in int.
// Returns ErrNegativeExtent or ErrOverflow.
// Complexity: O(R).
func validateExtent[R Rank](e R) error {
	var ok bool
	total := 1
	for d := 0; d < len(e); d++ {
		if e[d] < 0 {
			return ErrNegativeExtent
		}
	}
	for d := 0; d < len(e); d++ {
		if total, ok = mulChecked(total, e[d]); !ok {
			return ErrOverflow
		}
	}

	return nil
}

// validateRegion checks that the region [origin, origin+sub) lies inside e.
// Empty sub-extents are legal as long as the origin stays within [0, e[d]].
// Returns ErrBadSection.
// Complexity: O(R).
func validateRegion[R Rank](e R, origin Index[R], sub Bounds[R]) error {
	for d := 0; d < len(e); d++ {
		o := origin.c[d]
		if o < 0 || o > e[d] {
			return ErrBadSection
		}
		end, ok := addChecked(o, sub.e[d])
		if !ok || end > e[d] {
			return ErrBadSection
		}
	}

	return nil
}

// offsetRange returns the smallest and largest offsets, relative to the base
// offset, that a strided layout with extent e and stride s can address.
// The extent must be non-empty.
// Returns ErrOverflow when any partial sum leaves the int range.
// Complexity: O(R).
func offsetRange[R Rank](e R, s Index[R]) (lo, hi int, err error) {
	var step int
	var ok bool
	for d := 0; d < len(e); d++ {
		if step, ok = mulChecked(e[d]-1, s.c[d]); !ok {
			return 0, 0, ErrOverflow
		}
		if step < 0 {
			lo, ok = addChecked(lo, step)
		} else {
			hi, ok = addChecked(hi, step)
		}
		if !ok {
			return 0, 0, ErrOverflow
		}
	}

	return lo, hi, nil
}
