package ndview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorph/ndview"
)

// TestNewIndex_RankMismatch ensures constructors reject component counts that
// differ from the rank.
func TestNewIndex_RankMismatch(t *testing.T) {
	_, err := ndview.NewIndex[ndview.R2](1)
	require.ErrorIs(t, err, ndview.ErrRankMismatch)

	_, err = ndview.NewIndex[ndview.R2](1, 2, 3)
	require.ErrorIs(t, err, ndview.ErrRankMismatch)

	i, err := ndview.NewIndex[ndview.R3](1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, ndview.R3{1, 2, 3}, i.Array())
	require.Equal(t, 3, i.Rank())

	require.Panics(t, func() { ndview.MustIndex[ndview.R1](1, 2) })
}

// TestIndex_AtSet checks component access and the dimension guard.
func TestIndex_AtSet(t *testing.T) {
	i := ndview.IndexOf(ndview.R3{4, 5, 6})

	v, err := i.At(2)
	require.NoError(t, err)
	require.Equal(t, 6, v)

	_, err = i.At(3)
	require.ErrorIs(t, err, ndview.ErrDimension)
	_, err = i.At(-1)
	require.ErrorIs(t, err, ndview.ErrDimension)

	require.NoError(t, i.Set(0, 9))
	require.Equal(t, ndview.R3{9, 5, 6}, i.Array())

	require.ErrorIs(t, i.Set(3, 1), ndview.ErrDimension)
	require.Equal(t, ndview.R3{9, 5, 6}, i.Array()) // unchanged on failure
}

// TestIndex_Arithmetic verifies element-wise operators.
func TestIndex_Arithmetic(t *testing.T) {
	a := ndview.IndexOf(ndview.R3{1, 2, 3})
	b := ndview.IndexOf(ndview.R3{4, 5, 6})

	require.Equal(t, ndview.R3{5, 7, 9}, a.Add(b).Array())
	require.Equal(t, ndview.R3{-3, -3, -3}, a.Sub(b).Array())
	require.Equal(t, ndview.R3{-1, -2, -3}, a.Neg().Array())
	require.Equal(t, ndview.R3{2, 4, 6}, a.Scale(2).Array())

	q, err := b.Div(2)
	require.NoError(t, err)
	require.Equal(t, ndview.R3{2, 2, 3}, q.Array())

	_, err = b.Div(0)
	require.ErrorIs(t, err, ndview.ErrDivideByZero)

	// operands are values; none of the above mutated them
	require.Equal(t, ndview.R3{1, 2, 3}, a.Array())
	require.True(t, a.Equal(ndview.MustIndex[ndview.R3](1, 2, 3)))
	require.False(t, a.Equal(b))
}

// TestIncDec covers the rank-1 successor and predecessor.
func TestIncDec(t *testing.T) {
	i := ndview.IndexOf(ndview.R1{7})
	require.Equal(t, ndview.R1{8}, ndview.Inc(i).Array())
	require.Equal(t, ndview.R1{6}, ndview.Dec(i).Array())
	require.Equal(t, ndview.R1{7}, ndview.Dec(ndview.Inc(i)).Array())
}

// TestIndex_String checks the textual form.
func TestIndex_String(t *testing.T) {
	require.Equal(t, "{1, -2, 3}", ndview.IndexOf(ndview.R3{1, -2, 3}).String())
	require.Equal(t, "{0}", ndview.Index[ndview.R1]{}.String())
}
