// SPDX-License-Identifier: MIT

// Package traverse runs element visitors over a view in parallel.
//
// The extent of the view is split along dimension 0 with Bounds.Partition
// and each region's Section is handed to one goroutine of an errgroup. For a
// one-to-one layout the sections address disjoint elements, so the visitor
// may write through its *T without synchronization as long as it only
// touches the element it was given. Layouts that may alias (zero or
// overlapping strides, see StridedArrayView.MayAlias) are visited as a
// single region on one goroutine instead; Reduce only reads and stays
// parallel for every layout.
//
// Reduce folds every region independently and merges partial results in
// region order, so the result does not depend on scheduling.
//
//	err := traverse.ForEach(ctx, img.AsStrided(), func(i ndview.Index[ndview.R2], px *uint8) error {
//		*px = 255 - *px
//		return nil
//	}, traverse.WithWorkers(4))
package traverse
