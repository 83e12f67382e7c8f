// SPDX-License-Identifier: MIT

// Package ndview - Dense view (ArrayView).
//
// Purpose:
//   - Non-owning row-major window over a caller-owned buffer: a slice plus a Bounds.
//   - Strides are never stored; Stride() derives the canonical ones from the
//     extent on every call, so they cannot drift after slicing.
//   - Element access is always bounds-checked through Bounds.Contains and
//     reports ErrOutOfRange instead of panicking, in every build.
//
// Aliasing:
//   - Views share the caller's buffer. Writes through one view are visible
//     through every view of the same buffer. Concurrent writes need external
//     synchronization.
//
// Complexity quicksheet:
//   - NewArrayView, At, Set, Ref, Section, slices: O(R).
//   - Do, Apply, Fill, All: O(TotalCount()).

package ndview

import (
	"fmt"
	"iter"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRef     = "Ref"
	ctxSection = "Section"
	ctxSlice   = "Slice"
)

// ArrayView is a dense, row-major view of rank len(R) over elements of type T.
type ArrayView[T any, R Rank] struct {
	data   []T       // shared buffer, len(data) >= bounds.TotalCount()
	bounds Bounds[R] // extent of the view
}

// NewArrayView wraps data with extent b.
// MAIN DESCRIPTION:
//   - The buffer is not copied; the view stays valid as long as data does.
//
// Errors:
//   - ErrBufferTooSmall when len(data) < b.TotalCount().
//
// Complexity:
//   - Time O(R), Space O(1).
func NewArrayView[T any, R Rank](data []T, b Bounds[R]) (ArrayView[T, R], error) {
	n := b.TotalCount()
	if len(data) < n {
		return ArrayView[T, R]{}, fmt.Errorf("NewArrayView(len %d, %v): %w", len(data), b, ErrBufferTooSmall)
	}

	return ArrayView[T, R]{data: data[:n:n], bounds: b}, nil
}

// Bounds returns the extent of the view.
func (v ArrayView[T, R]) Bounds() Bounds[R] { return v.bounds }

// Stride returns the canonical row-major strides of the current extent.
func (v ArrayView[T, R]) Stride() Index[R] { return v.bounds.Strides() }

// Size returns the number of elements the view addresses.
func (v ArrayView[T, R]) Size() int { return len(v.data) }

// Data returns the addressed part of the buffer, shared with the view.
func (v ArrayView[T, R]) Data() []T { return v.data }

// offsetOf returns the buffer offset of i, or ErrOutOfRange wrapped with the
// method tag.
func (v ArrayView[T, R]) offsetOf(method string, i Index[R]) (int, error) {
	if !v.bounds.Contains(i) {
		return 0, fmt.Errorf("ArrayView.%s(%v) in %v: %w", method, i, v.bounds, ErrOutOfRange)
	}

	return v.bounds.ravel(i), nil
}

// At returns the element at i.
// Returns ErrOutOfRange when i is not contained in the extent.
func (v ArrayView[T, R]) At(i Index[R]) (T, error) {
	off, err := v.offsetOf(ctxAt, i)
	if err != nil {
		var zero T

		return zero, err
	}

	return v.data[off], nil
}

// Set writes val at i, through to the shared buffer.
// Returns ErrOutOfRange when i is not contained in the extent.
func (v ArrayView[T, R]) Set(i Index[R], val T) error {
	off, err := v.offsetOf(ctxSet, i)
	if err != nil {
		return err
	}
	v.data[off] = val

	return nil
}

// Ref returns a pointer to the element at i, for in-place updates.
// Returns ErrOutOfRange when i is not contained in the extent.
func (v ArrayView[T, R]) Ref(i Index[R]) (*T, error) {
	off, err := v.offsetOf(ctxRef, i)
	if err != nil {
		return nil, err
	}

	return &v.data[off], nil
}

// AsStrided converts the view into a StridedArrayView with the canonical
// strides made explicit. The conversion is lossless and shares the buffer.
func (v ArrayView[T, R]) AsStrided() StridedArrayView[T, R] {
	return StridedArrayView[T, R]{
		data:   v.data,
		bounds: v.bounds,
		stride: v.bounds.Strides(),
	}
}

// Section returns the sub-region [origin, origin+sub) as a strided view with
// the canonical strides of v. No data is copied.
// MAIN DESCRIPTION:
//   - Result[l] addresses the same element as v[origin+l].
//
// Errors:
//   - ErrBadSection when the region leaves the extent of v.
//
// Complexity:
//   - Time O(R), Space O(1).
func (v ArrayView[T, R]) Section(origin Index[R], sub Bounds[R]) (StridedArrayView[T, R], error) {
	s, err := v.AsStrided().Section(origin, sub)
	if err != nil {
		return StridedArrayView[T, R]{}, fmt.Errorf("ArrayView.%s: %w", ctxSection, err)
	}

	return s, nil
}

// SectionFrom is Section with sub = Bounds() - origin.
func (v ArrayView[T, R]) SectionFrom(origin Index[R]) (StridedArrayView[T, R], error) {
	sub, err := v.bounds.Shrink(origin)
	if err != nil {
		return StridedArrayView[T, R]{}, fmt.Errorf("ArrayView.%s(%v) in %v: %w", ctxSection, origin, v.bounds, ErrBadSection)
	}

	return v.Section(origin, sub)
}

// All yields every coordinate with its element, in row-major order.
func (v ArrayView[T, R]) All() iter.Seq2[Index[R], T] {
	return func(yield func(Index[R], T) bool) {
		n := 0
		for i := range v.bounds.All() {
			if !yield(i, v.data[n]) {
				return
			}
			n++
		}
	}
}

// Do visits each element in row-major order and calls f(i, val).
// It stops early when f returns false.
func (v ArrayView[T, R]) Do(f func(i Index[R], val T) bool) {
	for i, val := range v.All() {
		if !f(i, val) {
			return
		}
	}
}

// Apply replaces each element with f(i, val), in row-major order.
func (v ArrayView[T, R]) Apply(f func(i Index[R], val T) T) {
	n := 0
	for i := range v.bounds.All() {
		v.data[n] = f(i, v.data[n])
		n++
	}
}

// Fill sets every element to val.
func (v ArrayView[T, R]) Fill(val T) {
	for n := range v.data {
		v.data[n] = val
	}
}

// String renders the view as nested brackets, one innermost run per line.
func (v ArrayView[T, R]) String() string {
	return v.AsStrided().String()
}

// sliceDense fixes the outermost dimension of v to k. Q must be the rank one
// below R; the exported Slice2..Slice5 wrappers guarantee that.
func sliceDense[T any, R, Q Rank](v ArrayView[T, R], k int) (ArrayView[T, Q], error) {
	var q Bounds[Q]
	if len(q.e) != len(v.bounds.e)-1 {
		panic("ndview: sliceDense rank mismatch")
	}
	if k < 0 || k >= v.bounds.e[0] {
		return ArrayView[T, Q]{}, fmt.Errorf("ArrayView.%s(%d) in %v: %w", ctxSlice, k, v.bounds, ErrOutOfRange)
	}
	for d := 0; d < len(q.e); d++ {
		q.e[d] = v.bounds.e[d+1]
	}
	n := q.TotalCount()
	off := k * n

	return ArrayView[T, Q]{data: v.data[off : off+n : off+n], bounds: q}, nil
}

// writeRows renders a strided layout for String.
func writeRows[T any, R Rank](b *strings.Builder, s StridedArrayView[T, R]) {
	last := len(s.bounds.e) - 1
	for i := range s.bounds.All() {
		if i.c[last] == 0 {
			b.WriteByte('[')
		} else {
			b.WriteString(", ")
		}
		fmt.Fprint(b, s.data[s.offsetUnchecked(i)])
		if i.c[last] == s.bounds.e[last]-1 {
			b.WriteString("]\n")
		}
	}
}
