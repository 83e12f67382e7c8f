// SPDX-License-Identifier: MIT
// Package ndview: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the ndview
// package. Every public operation returns one of these (wrapped with call-site
// context) and tests check them via errors.Is. Panics are reserved for Must*
// helpers and for internal invariants that typed wrappers make unreachable.

package ndview

import "errors"

// NOTE ON WRAPPING
// ----------------
// Messages are prefixed with "ndview: ". Detection sites wrap with
// fmt.Errorf("Type.Method(args): %w", ErrX) so that the failing call and its
// arguments show up in messages while errors.Is still matches the sentinel.
//
// TAXONOMY
// shape mismatch      -> ErrRankMismatch, ErrNegativeExtent, ErrDimension
// out-of-range access -> ErrOutOfRange, ErrBadSection, ErrBufferTooSmall
// arithmetic overflow -> ErrOverflow
// sentinel misuse     -> ErrSentinel, ErrEmptyBounds

var (
	// ErrRankMismatch is returned when a coordinate or extent is built from a
	// number of components different from its rank.
	ErrRankMismatch = errors.New("ndview: component count does not match rank")

	// ErrDimension indicates a dimension number outside [0, rank).
	ErrDimension = errors.New("ndview: dimension out of range")

	// ErrNegativeExtent indicates an extent component below zero, either at
	// construction or as the result of extent arithmetic.
	ErrNegativeExtent = errors.New("ndview: negative extent")

	// ErrOverflow indicates that an offset, a product of extents or an
	// enumerator jump does not fit the addressable range.
	ErrOverflow = errors.New("ndview: arithmetic overflow")

	// ErrDivideByZero is returned by scalar division with a zero divisor.
	ErrDivideByZero = errors.New("ndview: division by zero")

	// ErrOutOfRange indicates a coordinate not contained in a view's extent.
	ErrOutOfRange = errors.New("ndview: index out of range")

	// ErrBadSection indicates a section whose origin or sub-extent reaches
	// outside the source view.
	ErrBadSection = errors.New("ndview: section out of bounds")

	// ErrBufferTooSmall indicates that a buffer cannot hold every element the
	// requested view would address.
	ErrBufferTooSmall = errors.New("ndview: buffer too small for view")

	// ErrSentinel is returned when dereferencing, or moving further past, the
	// off-the-end or before-the-start position of an enumerator.
	ErrSentinel = errors.New("ndview: enumerator at sentinel position")

	// ErrBoundsMismatch indicates two enumerators built over different extents.
	ErrBoundsMismatch = errors.New("ndview: enumerators over different bounds")

	// ErrEmptyBounds is returned when moving an enumerator over an empty extent.
	ErrEmptyBounds = errors.New("ndview: empty bounds")

	// ErrBadPermutation indicates an axis permutation that is not a bijection
	// on [0, rank).
	ErrBadPermutation = errors.New("ndview: invalid axis permutation")
)
