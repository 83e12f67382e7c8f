// Package ndview_test provides benchmarks for the hot paths: checked element
// access, enumeration and strided traversal.
package ndview_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmorph/ndview"
)

// benchSizes are the square extents to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkI int
	sinkF float32
)

func BenchmarkArrayViewAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v, err := ndview.NewArrayView(make([]float32, n*n), ndview.MustBounds[ndview.R2](n, n))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				for i := range v.Bounds().All() {
					x, err := v.At(i)
					if err != nil {
						b.Fatal(err)
					}
					sinkF += x
				}
			}
		})
	}
}

func BenchmarkIteratorNext(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			bounds := ndview.MustBounds[ndview.R2](n, n)
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				steps := 0
				for it := bounds.Begin(); !it.IsEnd(); _ = it.Next() {
					steps++
				}
				sinkI = steps
			}
		})
	}
}

func BenchmarkStridedSectionAll(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v, err := ndview.NewArrayView(make([]float32, n*n), ndview.MustBounds[ndview.R2](n, n))
			if err != nil {
				b.Fatal(err)
			}
			s, err := v.Section(ndview.IndexOf(ndview.R2{1, 1}), ndview.MustBounds[ndview.R2](n-2, n-2))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				for _, x := range s.All() {
					sinkF += x
				}
			}
		})
	}
}
