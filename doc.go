// Package lvmorph is the array-view layer of a mathematical-morphology
// toolkit: typed, non-owning windows onto flat pixel and voxel buffers.
//
// 🚀 What is inside?
//
//   - ndview: Index, Bounds, BoundsIterator, ArrayView, StridedArrayView
//   - traverse: partitioned parallel ForEach / Reduce over a view
//   - cmd/ndinspect: print enumeration orders, sections and slices
//
// ✨ Why lvmorph?
//
//   - Compile-time rank: R1..R5 are array types, mixing ranks does not compile
//   - Always checked: every access returns a sentinel error instead of panicking
//   - Zero copies: sections, slices, transposes and reversals share the buffer
//
// Quick ASCII example:
//
//	buffer  0 1 2      section at {0,1}, extent {2,2}
//	        3 4 5  →   1 2
//	                   4 5   (stride {3,1})
//
// Layout:
//
//	ndview/         — coordinates, extents, enumeration and views
//	traverse/       — errgroup-backed visitors over disjoint sections
//	cmd/ndinspect/  — layout inspection CLI
//	examples/       — island labeling and separable dilation
//
//	go get github.com/katalvlaran/lvmorph/ndview
package lvmorph
