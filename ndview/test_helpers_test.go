// SPDX-License-Identifier: MIT
// Package ndview_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures: buffers whose values equal their offsets,
//     so a read through any view reveals which element it addressed.

package ndview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorph/ndview"
)

// offsets returns []int{0, 1, ..., n-1}.
func offsets(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// idx2 is shorthand for a rank-2 index literal.
func idx2(a, b int) ndview.Index[ndview.R2] { return ndview.IndexOf(ndview.R2{a, b}) }

// denseView builds a dense view over offsets(TotalCount()) or fails the test.
func denseView[R ndview.Rank](tb testing.TB, vals ...int) ndview.ArrayView[int, R] {
	tb.Helper()
	b, err := ndview.NewBounds[R](vals...)
	require.NoError(tb, err)
	v, err := ndview.NewArrayView(offsets(b.TotalCount()), b)
	require.NoError(tb, err)

	return v
}

// iterAt returns an enumerator over b at linear position p in [-1, TotalCount()],
// reached by single steps only.
func iterAt[R ndview.Rank](tb testing.TB, b ndview.Bounds[R], p int) ndview.BoundsIterator[R] {
	tb.Helper()
	it := b.Begin()
	if p < 0 {
		require.NoError(tb, it.Prev())

		return it
	}
	for k := 0; k < p; k++ {
		require.NoError(tb, it.Next())
	}

	return it
}
