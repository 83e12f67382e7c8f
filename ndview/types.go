// SPDX-License-Identifier: MIT

package ndview

// Rank is the set of supported compile-time ranks. The rank of every
// coordinate, extent and view is the length of the array type it is
// instantiated with, so mixing ranks is a compile error rather than a runtime
// check.
type Rank interface {
	[1]int | [2]int | [3]int | [4]int | [5]int
}

// Rank aliases, for readable instantiations such as Index[R2].
type (
	R1 = [1]int
	R2 = [2]int
	R3 = [3]int
	R4 = [4]int
	R5 = [5]int
)

// Region is an origin plus an extent: the arguments of a Section call.
// Partition produces disjoint regions that tile an extent.
type Region[R Rank] struct {
	Origin Index[R]
	Extent Bounds[R]
}

// String renders the region as "origin+extent".
func (r Region[R]) String() string {
	return r.Origin.String() + "+" + r.Extent.String()
}
