// Package ndview provides non-owning, rank-parameterized views over dense or
// strided multi-dimensional buffers: the coordinate, extent and enumeration
// primitives that pixel arithmetic, erosion/dilation, labeling and geodesic
// reconstruction are built on.
//
// What:
//
//   - Index[R]: a coordinate of compile-time rank len(R).
//   - Bounds[R]: an extent; Contains is the single bounds test of the package.
//   - BoundsIterator[R]: row-major enumeration with off-the-end and
//     before-the-start sentinels and mixed-radix jumps.
//   - ArrayView[T, R]: a dense row-major window (slice + extent).
//   - StridedArrayView[T, R]: slice + offset + extent + explicit stride, the
//     result of sections, transposes and reversals.
//
// Rank:
//
//	The rank is the array type R (R1..R5). Mixing ranks does not compile.
//	Rank-specific operations are plain functions on one instantiation:
//	Inc/Dec on Index[R1], Slice2..Slice5 and StridedSlice2..StridedSlice5.
//
// Ownership:
//
//	Views never own, copy or reallocate their buffer. Concurrent reads through
//	any number of views are safe; concurrent writes, or writes concurrent with
//	reads of the same elements, need external synchronization. Sections of
//	disjoint regions (see Bounds.Partition) address disjoint elements.
//
// Errors:
//
//	Every access is bounds-checked in every build. Failures are sentinel errors
//	wrapped with the failing call (ErrOutOfRange, ErrBadSection, ErrOverflow,
//	ErrSentinel, ...); match them with errors.Is. A failed call leaves its
//	receiver unchanged.
//
// Quick example:
//
//	buf := []int{0, 1, 2, 3, 4, 5}
//	v, _ := ndview.NewArrayView(buf, ndview.MustBounds[ndview.R2](2, 3))
//	x, _ := v.At(ndview.IndexOf(ndview.R2{1, 2})) // 5
//	s, _ := v.Section(ndview.IndexOf(ndview.R2{0, 1}), ndview.MustBounds[ndview.R2](2, 2))
//	y, _ := s.At(ndview.IndexOf(ndview.R2{1, 1})) // 5
package ndview
