// SPDX-License-Identifier: MIT

// Package ndview - rank-reducing slices.
//
// A slice fixes the outermost coordinate and drops one dimension. Go cannot
// express "rank minus one" on a type parameter, so every supported rank pair
// gets its own function; rank 1 has none, which makes slicing a rank-1 view a
// compile error.

package ndview

// Slice2 returns row k of a rank-2 dense view: extent {e1}, element j is v[{k, j}].
// Returns ErrOutOfRange unless 0 <= k < e0.
func Slice2[T any](v ArrayView[T, R2], k int) (ArrayView[T, R1], error) {
	return sliceDense[T, R2, R1](v, k)
}

// Slice3 returns plane k of a rank-3 dense view.
func Slice3[T any](v ArrayView[T, R3], k int) (ArrayView[T, R2], error) {
	return sliceDense[T, R3, R2](v, k)
}

// Slice4 fixes the outermost coordinate of a rank-4 dense view.
func Slice4[T any](v ArrayView[T, R4], k int) (ArrayView[T, R3], error) {
	return sliceDense[T, R4, R3](v, k)
}

// Slice5 fixes the outermost coordinate of a rank-5 dense view.
func Slice5[T any](v ArrayView[T, R5], k int) (ArrayView[T, R4], error) {
	return sliceDense[T, R5, R4](v, k)
}

// StridedSlice2 returns row k of a rank-2 strided view. The remaining stride
// is the stored one, not a recomputed canonical stride.
// Returns ErrOutOfRange unless 0 <= k < e0.
func StridedSlice2[T any](v StridedArrayView[T, R2], k int) (StridedArrayView[T, R1], error) {
	return sliceStrided[T, R2, R1](v, k)
}

// StridedSlice3 fixes the outermost coordinate of a rank-3 strided view.
func StridedSlice3[T any](v StridedArrayView[T, R3], k int) (StridedArrayView[T, R2], error) {
	return sliceStrided[T, R3, R2](v, k)
}

// StridedSlice4 fixes the outermost coordinate of a rank-4 strided view.
func StridedSlice4[T any](v StridedArrayView[T, R4], k int) (StridedArrayView[T, R3], error) {
	return sliceStrided[T, R4, R3](v, k)
}

// StridedSlice5 fixes the outermost coordinate of a rank-5 strided view.
func StridedSlice5[T any](v StridedArrayView[T, R5], k int) (StridedArrayView[T, R4], error) {
	return sliceStrided[T, R5, R4](v, k)
}
