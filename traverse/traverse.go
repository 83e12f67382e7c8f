// SPDX-License-Identifier: MIT

package traverse

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmorph/ndview"
)

// cancelCheck is how many elements a worker visits between context checks.
const cancelCheck = 1024

// ForEach calls fn once for every element of v, with the element's index in v
// and a pointer into the underlying buffer.
// MAIN DESCRIPTION:
//   - Partitions v.Bounds() along dimension 0 and visits every region on its
//     own goroutine; at most WithWorkers regions run at once.
//
// Behavior highlights:
//   - Within a region the order is row-major; across regions it is unspecified.
//   - The first error returned by fn cancels the remaining regions and is
//     returned unwrapped. Cancellation of ctx is reported as ctx.Err().
//   - An empty view returns nil without calling fn.
//   - A view whose layout may address one element from two coordinates
//     (see StridedArrayView.MayAlias: broadcast or overlapping strides) is
//     visited as a single region, so fn is never called concurrently on it.
//
// Errors:
//   - ErrNilFunc if fn is nil.
//
// Complexity:
//   - Time O(N) total work, Space O(parts).
func ForEach[T any, R ndview.Rank](
	ctx context.Context,
	v ndview.StridedArrayView[T, R],
	fn func(i ndview.Index[R], p *T) error,
	opts ...Option,
) error {
	if fn == nil {
		return fmt.Errorf("ForEach: %w", ErrNilFunc)
	}
	o := gatherOptions(opts...)
	if v.MayAlias() {
		o.log.Debug("traverse: aliased layout, single region", "stride", v.Stride().String())
		o.workers = 1
	}
	regions := partition(v.Bounds(), o)
	if len(regions) == 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for k, reg := range regions {
		g.Go(func() error {
			s, err := v.Section(reg.Origin, reg.Extent)
			if err != nil {
				return err
			}
			o.log.Debug("traverse: region", "part", k, "region", reg.String())

			n := 0
			for l := range s.Bounds().All() {
				if n%cancelCheck == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				n++
				p, err := s.Ref(l)
				if err != nil {
					return err
				}
				if err := fn(reg.Origin.Add(l), p); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// Reduce folds every element of v into a value of type A.
// MAIN DESCRIPTION:
//   - Each region is folded on its own goroutine starting from zero; the
//     partial results are then merged left to right in region order.
//
// Behavior highlights:
//   - Deterministic for any worker count when merge is associative and zero
//     is its identity.
//   - An empty view returns zero.
//
// Errors:
//   - ErrNilFunc if fold or merge is nil.
//   - ctx.Err() if the context is cancelled before completion.
//
// Complexity:
//   - Time O(N + parts), Space O(parts).
func Reduce[T any, R ndview.Rank, A any](
	ctx context.Context,
	v ndview.StridedArrayView[T, R],
	zero A,
	fold func(acc A, i ndview.Index[R], val T) A,
	merge func(a, b A) A,
	opts ...Option,
) (A, error) {
	if fold == nil || merge == nil {
		return zero, fmt.Errorf("Reduce: %w", ErrNilFunc)
	}
	o := gatherOptions(opts...)
	regions := partition(v.Bounds(), o)
	if len(regions) == 0 {
		return zero, ctx.Err()
	}

	partials := make([]A, len(regions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for k, reg := range regions {
		g.Go(func() error {
			s, err := v.Section(reg.Origin, reg.Extent)
			if err != nil {
				return err
			}
			o.log.Debug("traverse: fold region", "part", k, "region", reg.String())

			acc, n := zero, 0
			for l, x := range s.All() {
				if n%cancelCheck == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				n++
				acc = fold(acc, reg.Origin.Add(l), x)
			}
			partials[k] = acc

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}

	return lo.Reduce(partials[1:], func(acc A, p A, _ int) A {
		return merge(acc, p)
	}, partials[0]), nil
}

// partition splits b into the regions ForEach and Reduce schedule.
func partition[R ndview.Rank](b ndview.Bounds[R], o options) []ndview.Region[R] {
	if b.Empty() {
		return nil
	}
	rows, _ := b.Dim(0)

	return b.Partition(o.parts(rows))
}
