package ndview_test

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/ndview"
)

// ExampleArrayView_Section views a 2×3 buffer, then a 2×2 window of it.
func ExampleArrayView_Section() {
	buf := []int{0, 1, 2, 3, 4, 5}
	v, err := ndview.NewArrayView(buf, ndview.MustBounds[ndview.R2](2, 3))
	if err != nil {
		fmt.Println(err)
		return
	}

	x, _ := v.At(ndview.IndexOf(ndview.R2{1, 2}))
	fmt.Println("v[{1,2}] =", x)

	s, _ := v.Section(ndview.IndexOf(ndview.R2{0, 1}), ndview.MustBounds[ndview.R2](2, 2))
	y, _ := s.At(ndview.IndexOf(ndview.R2{1, 1}))
	fmt.Println("section[{1,1}] =", y, "stride", s.Stride())
	fmt.Print(s)

	// Output:
	// v[{1,2}] = 5
	// section[{1,1}] = 5 stride {3, 1}
	// [1, 2]
	// [4, 5]
}

// ExampleBoundsIterator shows the row-major walk and both sentinels.
func ExampleBoundsIterator() {
	b := ndview.MustBounds[ndview.R2](2, 3)
	for it := b.Begin(); !it.IsEnd(); _ = it.Next() {
		i, _ := it.Index()
		if !it.Equal(b.Begin()) {
			fmt.Print(" ")
		}
		fmt.Print(i)
	}
	fmt.Println()

	fmt.Println("end:", b.End().Position())

	it := b.Begin()
	_ = it.Prev()
	fmt.Println("before-start:", it.Position(), it.IsBeforeStart())

	// Output:
	// {0, 0} {0, 1} {0, 2} {1, 0} {1, 1} {1, 2}
	// end: {1, 3}
	// before-start: {0, -1} true
}

// ExampleBoundsIterator_Retreat jumps across the before-the-start sentinel.
func ExampleBoundsIterator_Retreat() {
	b := ndview.MustBounds[ndview.R1](4)
	it := b.Begin()
	_ = it.Advance(2)
	fmt.Println(it.Position())

	_ = it.Retreat(3)
	fmt.Println(it.Position(), it.IsBeforeStart())

	_ = it.Advance(3)
	fmt.Println(it.Position())

	// Output:
	// {2}
	// {-1} true
	// {2}
}

// ExampleSlice2 processes an image one line at a time, the way separable
// morphological passes do.
func ExampleSlice2() {
	img := []uint8{
		1, 0, 0, 1,
		0, 1, 1, 0,
		1, 1, 1, 1,
	}
	v, _ := ndview.NewArrayView(img, ndview.MustBounds[ndview.R2](3, 4))
	for k := 0; k < 3; k++ {
		line, _ := ndview.Slice2(v, k)
		count := 0
		for _, px := range line.All() {
			count += int(px)
		}
		fmt.Printf("line %d: %d set\n", k, count)
	}

	// Output:
	// line 0: 2 set
	// line 1: 2 set
	// line 2: 4 set
}

// ExampleStridedArrayView_Transpose reads a matrix column-wise without copying.
func ExampleStridedArrayView_Transpose() {
	v, _ := ndview.NewArrayView([]int{1, 2, 3, 4, 5, 6}, ndview.MustBounds[ndview.R2](2, 3))
	t, _ := v.AsStrided().Transpose(ndview.IndexOf(ndview.R2{1, 0}))
	fmt.Print(t)

	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
