package traverse_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorph/ndview"
	"github.com/katalvlaran/lvmorph/traverse"
)

// grid returns a dense h×w view over 0..h*w-1.
func grid(t *testing.T, h, w int) ndview.ArrayView[int, ndview.R2] {
	t.Helper()
	buf := make([]int, h*w)
	for i := range buf {
		buf[i] = i
	}
	v, err := ndview.NewArrayView(buf, ndview.MustBounds[ndview.R2](h, w))
	require.NoError(t, err)

	return v
}

// TestForEach_VisitsEveryElementOnce writes through every pointer and checks
// each element was touched exactly once with its own index.
func TestForEach_VisitsEveryElementOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 8, 16} {
		t.Run(strconv.Itoa(workers), func(t *testing.T) {
			v := grid(t, 7, 3)
			var calls atomic.Int64
			err := traverse.ForEach(context.Background(), v.AsStrided(), func(i ndview.Index[ndview.R2], p *int) error {
				calls.Add(1)
				l, err := v.Bounds().Linear(i)
				if err != nil {
					return err
				}
				if *p != l {
					return errors.New("index does not match element")
				}
				*p = -1

				return nil
			}, traverse.WithWorkers(workers))
			require.NoError(t, err)
			require.EqualValues(t, 21, calls.Load())
			for _, x := range v.Data() {
				require.Equal(t, -1, x)
			}
		})
	}
}

// TestForEach_Section visits a strided section with indices local to it.
func TestForEach_Section(t *testing.T) {
	v := grid(t, 5, 5)
	s, err := v.Section(ndview.IndexOf(ndview.R2{1, 1}), ndview.MustBounds[ndview.R2](3, 3))
	require.NoError(t, err)

	err = traverse.ForEach(context.Background(), s, func(i ndview.Index[ndview.R2], p *int) error {
		a := i.Array()
		*p = 100 + 10*a[0] + a[1]

		return nil
	}, traverse.WithWorkers(2))
	require.NoError(t, err)

	require.Equal(t, []int{5, 100, 101, 102, 9}, v.Data()[5:10])
	require.Equal(t, []int{15, 120, 121, 122, 19}, v.Data()[15:20])
	require.Equal(t, 0, v.Data()[0])
	require.Equal(t, 24, v.Data()[24])
}

// TestForEach_Errors covers a failing visitor, a nil visitor and a cancelled
// context.
func TestForEach_Errors(t *testing.T) {
	v := grid(t, 6, 4).AsStrided()
	boom := errors.New("boom")

	err := traverse.ForEach(context.Background(), v, func(i ndview.Index[ndview.R2], p *int) error {
		if *p == 13 {
			return boom
		}

		return nil
	}, traverse.WithWorkers(3))
	require.ErrorIs(t, err, boom)

	err = traverse.ForEach[int, ndview.R2](context.Background(), v, nil)
	require.ErrorIs(t, err, traverse.ErrNilFunc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = traverse.ForEach(ctx, v, func(ndview.Index[ndview.R2], *int) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

// TestForEach_Empty never calls the visitor.
func TestForEach_Empty(t *testing.T) {
	v, err := ndview.NewArrayView([]int(nil), ndview.MustBounds[ndview.R2](0, 4))
	require.NoError(t, err)
	err = traverse.ForEach(context.Background(), v.AsStrided(), func(ndview.Index[ndview.R2], *int) error {
		return errors.New("called")
	})
	require.NoError(t, err)
}

// TestReduce_Sum matches the sequential sum for every worker count.
func TestReduce_Sum(t *testing.T) {
	v := grid(t, 9, 4).AsStrided()
	add := func(a, b int) int { return a + b }
	for _, workers := range []int{1, 2, 4, 9, 32} {
		got, err := traverse.Reduce(context.Background(), v, 0,
			func(acc int, _ ndview.Index[ndview.R2], x int) int { return acc + x },
			add, traverse.WithWorkers(workers))
		require.NoError(t, err)
		require.Equal(t, 35*36/2, got)
	}
}

// TestReduce_MergesInRegionOrder uses a non-commutative merge to check the
// result is the row-major concatenation regardless of scheduling.
func TestReduce_MergesInRegionOrder(t *testing.T) {
	v := grid(t, 6, 2).AsStrided()
	fold := func(acc string, _ ndview.Index[ndview.R2], x int) string { return acc + strconv.Itoa(x) + "," }
	merge := func(a, b string) string { return a + b }

	for _, workers := range []int{1, 2, 3, 6} {
		got, err := traverse.Reduce(context.Background(), v, "", fold, merge, traverse.WithWorkers(workers))
		require.NoError(t, err)
		require.Equal(t, "0,1,2,3,4,5,6,7,8,9,10,11,", got)
	}
}

// TestReduce_Errors covers nil functions, cancellation and the empty view.
func TestReduce_Errors(t *testing.T) {
	v := grid(t, 2, 2).AsStrided()
	fold := func(acc int, _ ndview.Index[ndview.R2], x int) int { return acc + x }

	_, err := traverse.Reduce[int, ndview.R2, int](context.Background(), v, 0, nil, func(a, b int) int { return a + b })
	require.ErrorIs(t, err, traverse.ErrNilFunc)
	_, err = traverse.Reduce[int, ndview.R2, int](context.Background(), v, 0, fold, nil)
	require.ErrorIs(t, err, traverse.ErrNilFunc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := traverse.Reduce(ctx, v, -7, fold, func(a, b int) int { return a + b })
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, -7, got)

	e, err := ndview.NewArrayView([]int(nil), ndview.MustBounds[ndview.R2](0, 0))
	require.NoError(t, err)
	got, err = traverse.Reduce(context.Background(), e.AsStrided(), 42, fold, func(a, b int) int { return a + b })
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

// TestOptions checks option validation, region sizing and logging.
func TestOptions(t *testing.T) {
	require.Panics(t, func() { traverse.WithWorkers(0) })
	require.Panics(t, func() { traverse.WithMinRegion(0) })
	require.NotPanics(t, func() { traverse.WithLogger(nil) })

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := grid(t, 10, 2).AsStrided()
	err := traverse.ForEach(context.Background(), v, func(ndview.Index[ndview.R2], *int) error { return nil },
		traverse.WithWorkers(8), traverse.WithMinRegion(4), traverse.WithLogger(log))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(buf.String(), "traverse: region"))
}

// TestForEach_AliasedLayoutIsSerial writes through a broadcast view whose
// rows all share one buffer row. Every write must land, and the run must be
// clean under the race detector.
func TestForEach_AliasedLayoutIsSerial(t *testing.T) {
	buf := make([]int, 4)
	bc, err := ndview.NewStridedArrayView(buf, 0, ndview.MustBounds[ndview.R2](64, 4), ndview.IndexOf(ndview.R2{0, 1}))
	require.NoError(t, err)
	require.True(t, bc.MayAlias())

	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	for round := 1; round <= 20; round++ {
		err := traverse.ForEach(context.Background(), bc, func(_ ndview.Index[ndview.R2], p *int) error {
			*p++

			return nil
		}, traverse.WithWorkers(8), traverse.WithLogger(log))
		require.NoError(t, err)
		require.Equal(t, []int{64 * round, 64 * round, 64 * round, 64 * round}, buf)
	}
	require.Equal(t, 20, strings.Count(out.String(), "traverse: region"))

	// overlapping rows: row k starts at k, so interior elements are shared
	ov := make([]int, 6)
	s, err := ndview.NewStridedArrayView(ov, 0, ndview.MustBounds[ndview.R2](3, 4), ndview.IndexOf(ndview.R2{1, 1}))
	require.NoError(t, err)
	err = traverse.ForEach(context.Background(), s, func(_ ndview.Index[ndview.R2], p *int) error {
		*p++

		return nil
	}, traverse.WithWorkers(3))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 3, 2, 1}, ov)
}
