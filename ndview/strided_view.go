// SPDX-License-Identifier: MIT

// Package ndview - Strided view (StridedArrayView).
//
// Purpose:
//   - General layout: buffer + base offset + extent + explicit per-dimension
//     stride. Sections, transposes and reversals of a view are again strided
//     views over the same buffer; nothing is re-densified.
//   - Zero strides (broadcast) and negative strides (reversed traversal) are
//     legal as long as every addressed element lies inside the buffer.
//
// Invariants (checked at construction, preserved by every derivation):
//   - offset + sum over d of (e[d]-1)*stride[d], taking the negative terms
//     for the minimum and the positive ones for the maximum, stays within
//     [0, len(data)) and never overflows int.
//
// Complexity quicksheet:
//   - Construction, At, Set, Ref, Section, Transpose, Reverse, slices: O(R).
//   - Do, Apply, Fill, All, Clone, CopyTo: O(TotalCount()*R).

package ndview

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// StridedArrayView is a view of rank len(R) with explicit strides.
type StridedArrayView[T any, R Rank] struct {
	data   []T       // shared buffer
	offset int       // buffer offset of the origin element
	bounds Bounds[R] // extent of the view
	stride Index[R]  // per-dimension step in elements
}

// NewStridedArrayView builds a strided view addressing
// data[offset + sum(i[d]*stride[d])] for every i contained in b.
// MAIN DESCRIPTION:
//   - Stage 1: an empty extent addresses nothing and is always legal.
//   - Stage 2: compute the lowest and highest addressed offsets with
//     overflow-checked arithmetic.
//   - Stage 3: require both to lie in [0, len(data)).
//
// Errors:
//   - ErrOverflow when an offset does not fit in int.
//   - ErrBufferTooSmall when an addressed offset falls outside data.
//
// Complexity:
//   - Time O(R), Space O(1).
func NewStridedArrayView[T any, R Rank](data []T, offset int, b Bounds[R], stride Index[R]) (StridedArrayView[T, R], error) {
	v := StridedArrayView[T, R]{data: data, offset: offset, bounds: b, stride: stride}
	if b.Empty() {
		return v, nil
	}
	lo, hi, err := offsetRange(b.e, stride)
	if err == nil {
		var ok1, ok2 bool
		lo, ok1 = addChecked(offset, lo)
		hi, ok2 = addChecked(offset, hi)
		if !ok1 || !ok2 {
			err = ErrOverflow
		}
	}
	if err != nil {
		return StridedArrayView[T, R]{}, fmt.Errorf("NewStridedArrayView(offset %d, %v, stride %v): %w", offset, b, stride, err)
	}
	if lo < 0 || hi >= len(data) {
		return StridedArrayView[T, R]{}, fmt.Errorf("NewStridedArrayView(len %d, offset %d, %v, stride %v): %w",
			len(data), offset, b, stride, ErrBufferTooSmall)
	}

	return v, nil
}

// Bounds returns the extent of the view.
func (v StridedArrayView[T, R]) Bounds() Bounds[R] { return v.bounds }

// Stride returns the stored strides.
func (v StridedArrayView[T, R]) Stride() Index[R] { return v.stride }

// Offset returns the buffer offset of the origin element.
func (v StridedArrayView[T, R]) Offset() int { return v.offset }

// Size returns the number of coordinates the view addresses.
func (v StridedArrayView[T, R]) Size() int { return v.bounds.TotalCount() }

// IsContiguous reports whether the strides are the canonical row-major ones
// of the extent, i.e. the view could be expressed as an ArrayView over
// data[Offset():]. Dimensions of size 1 are ignored.
func (v StridedArrayView[T, R]) IsContiguous() bool {
	c := v.bounds.Strides()
	for d := 0; d < len(c.c); d++ {
		if v.bounds.e[d] > 1 && v.stride.c[d] != c.c[d] {
			return false
		}
	}

	return true
}

// MayAlias reports whether two distinct coordinates of the view can address
// the same buffer element. The test is conservative: false guarantees a
// one-to-one layout, true is returned for every broadcast (zero stride) or
// overlapping layout and for some interleaved ones.
// MAIN DESCRIPTION:
//   - Dimensions of size 0 or 1 never step and are skipped.
//   - The rest are sorted by |stride|; each must step past the furthest
//     offset reachable with the smaller ones.
//
// Complexity:
//   - Time O(R log R), Space O(1).
func (v StridedArrayView[T, R]) MayAlias() bool {
	if v.bounds.Empty() {
		return false
	}
	type axis struct{ step, span int }
	var buf [5]axis
	axes := buf[:0]
	for d := 0; d < len(v.bounds.e); d++ {
		if v.bounds.e[d] < 2 {
			continue
		}
		s := v.stride.c[d]
		if s < 0 {
			s = -s
		}
		// (e-1)*|s| fits: construction bounded it by the buffer length.
		axes = append(axes, axis{step: s, span: (v.bounds.e[d] - 1) * s})
	}
	slices.SortFunc(axes, func(a, b axis) int { return cmp.Compare(a.step, b.step) })

	reach := 0
	for _, a := range axes {
		if a.step <= reach {
			return true
		}
		reach += a.span
	}

	return false
}

// offsetUnchecked returns the buffer offset of a contained index.
func (v StridedArrayView[T, R]) offsetUnchecked(i Index[R]) int {
	off := v.offset
	for d := 0; d < len(i.c); d++ {
		off += i.c[d] * v.stride.c[d]
	}

	return off
}

// offsetOf returns the buffer offset of i, or ErrOutOfRange wrapped with the
// method tag.
func (v StridedArrayView[T, R]) offsetOf(method string, i Index[R]) (int, error) {
	if !v.bounds.Contains(i) {
		return 0, fmt.Errorf("StridedArrayView.%s(%v) in %v: %w", method, i, v.bounds, ErrOutOfRange)
	}

	return v.offsetUnchecked(i), nil
}

// At returns the element at i.
// Returns ErrOutOfRange when i is not contained in the extent.
func (v StridedArrayView[T, R]) At(i Index[R]) (T, error) {
	off, err := v.offsetOf(ctxAt, i)
	if err != nil {
		var zero T

		return zero, err
	}

	return v.data[off], nil
}

// Set writes val at i, through to the shared buffer.
// Returns ErrOutOfRange when i is not contained in the extent.
func (v StridedArrayView[T, R]) Set(i Index[R], val T) error {
	off, err := v.offsetOf(ctxSet, i)
	if err != nil {
		return err
	}
	v.data[off] = val

	return nil
}

// Ref returns a pointer to the element at i.
// Returns ErrOutOfRange when i is not contained in the extent.
func (v StridedArrayView[T, R]) Ref(i Index[R]) (*T, error) {
	off, err := v.offsetOf(ctxRef, i)
	if err != nil {
		return nil, err
	}

	return &v.data[off], nil
}

// Section returns the sub-region [origin, origin+sub) with the stored strides
// copied through. Sections of sections stack without copying.
// MAIN DESCRIPTION:
//   - Result[l] addresses the same element as v[origin+l].
//   - The new base offset is offset + sum(origin[d]*stride[d]).
//
// Errors:
//   - ErrBadSection when the region leaves the extent of v.
//
// Complexity:
//   - Time O(R), Space O(1).
func (v StridedArrayView[T, R]) Section(origin Index[R], sub Bounds[R]) (StridedArrayView[T, R], error) {
	if err := validateRegion(v.bounds.e, origin, sub); err != nil {
		return StridedArrayView[T, R]{}, fmt.Errorf("StridedArrayView.%s(%v, %v) in %v: %w", ctxSection, origin, sub, v.bounds, err)
	}
	s := v
	s.bounds = sub
	if !sub.Empty() {
		// origin is contained in v.bounds here, so the offset is in range.
		s.offset = v.offsetUnchecked(origin)
	}

	return s, nil
}

// SectionFrom is Section with sub = Bounds() - origin.
func (v StridedArrayView[T, R]) SectionFrom(origin Index[R]) (StridedArrayView[T, R], error) {
	sub, err := v.bounds.Shrink(origin)
	if err != nil {
		return StridedArrayView[T, R]{}, fmt.Errorf("StridedArrayView.%s(%v) in %v: %w", ctxSection, origin, v.bounds, ErrBadSection)
	}

	return v.Section(origin, sub)
}

// Transpose reorders the axes: dimension d of the result is dimension
// perm[d] of v. The buffer is shared; only extents and strides move.
// Returns ErrBadPermutation unless perm is a permutation of [0, rank).
func (v StridedArrayView[T, R]) Transpose(perm Index[R]) (StridedArrayView[T, R], error) {
	var seen R
	t := v
	for d := 0; d < len(perm.c); d++ {
		a := perm.c[d]
		if a < 0 || a >= len(seen) || seen[a] != 0 {
			return StridedArrayView[T, R]{}, fmt.Errorf("StridedArrayView.Transpose(%v): %w", perm, ErrBadPermutation)
		}
		seen[a] = 1
		t.bounds.e[d] = v.bounds.e[a]
		t.stride.c[d] = v.stride.c[a]
	}

	return t, nil
}

// Reverse flips the traversal direction of dimension d: the base offset moves
// to the last element along d and its stride changes sign.
// Returns ErrDimension when d is outside [0, rank).
func (v StridedArrayView[T, R]) Reverse(d int) (StridedArrayView[T, R], error) {
	if d < 0 || d >= len(v.stride.c) {
		return StridedArrayView[T, R]{}, fmt.Errorf("StridedArrayView.Reverse(%d): %w", d, ErrDimension)
	}
	r := v
	if v.bounds.e[d] > 0 {
		r.offset += (v.bounds.e[d] - 1) * v.stride.c[d]
	}
	r.stride.c[d] = -v.stride.c[d]

	return r, nil
}

// All yields every coordinate with its element, in row-major order of the
// view's own coordinates.
func (v StridedArrayView[T, R]) All() iter.Seq2[Index[R], T] {
	return func(yield func(Index[R], T) bool) {
		for i := range v.bounds.All() {
			if !yield(i, v.data[v.offsetUnchecked(i)]) {
				return
			}
		}
	}
}

// Do visits each element in row-major order; it stops when f returns false.
func (v StridedArrayView[T, R]) Do(f func(i Index[R], val T) bool) {
	for i, val := range v.All() {
		if !f(i, val) {
			return
		}
	}
}

// Apply replaces each element with f(i, val). With zero or aliasing strides
// an element may be visited more than once.
func (v StridedArrayView[T, R]) Apply(f func(i Index[R], val T) T) {
	for i := range v.bounds.All() {
		off := v.offsetUnchecked(i)
		v.data[off] = f(i, v.data[off])
	}
}

// Fill sets every addressed element to val.
func (v StridedArrayView[T, R]) Fill(val T) {
	for i := range v.bounds.All() {
		v.data[v.offsetUnchecked(i)] = val
	}
}

// Clone materializes the view into a new dense buffer in row-major order.
// The result shares nothing with v.
// Complexity: O(TotalCount()*R) time, O(TotalCount()) space.
func (v StridedArrayView[T, R]) Clone() ArrayView[T, R] {
	buf := make([]T, v.bounds.TotalCount())
	n := 0
	for _, val := range v.All() {
		buf[n] = val
		n++
	}

	return ArrayView[T, R]{data: buf, bounds: v.bounds}
}

// CopyTo copies every element of v into dst at the same coordinate.
// dst must not overlap the elements v addresses.
// Returns ErrBoundsMismatch when the extents differ.
func (v StridedArrayView[T, R]) CopyTo(dst ArrayView[T, R]) error {
	if !v.bounds.Equal(dst.bounds) {
		return fmt.Errorf("StridedArrayView.CopyTo(%v -> %v): %w", v.bounds, dst.bounds, ErrBoundsMismatch)
	}
	n := 0
	for _, val := range v.All() {
		dst.data[n] = val
		n++
	}

	return nil
}

// String renders the view as one bracketed line per innermost run.
func (v StridedArrayView[T, R]) String() string {
	var b strings.Builder
	writeRows(&b, v)

	return b.String()
}

// sliceStrided fixes the outermost dimension of v to k, keeping the stored
// strides of the remaining dimensions.
func sliceStrided[T any, R, Q Rank](v StridedArrayView[T, R], k int) (StridedArrayView[T, Q], error) {
	var q StridedArrayView[T, Q]
	if len(q.bounds.e) != len(v.bounds.e)-1 {
		panic("ndview: sliceStrided rank mismatch")
	}
	if k < 0 || k >= v.bounds.e[0] {
		return q, fmt.Errorf("StridedArrayView.%s(%d) in %v: %w", ctxSlice, k, v.bounds, ErrOutOfRange)
	}
	q.data = v.data
	q.offset = v.offset + k*v.stride.c[0]
	for d := 0; d < len(q.bounds.e); d++ {
		q.bounds.e[d] = v.bounds.e[d+1]
		q.stride.c[d] = v.stride.c[d+1]
	}

	return q, nil
}
