package mergesort_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/puzzlekit/puzzlekit/mergesort"
)

// BenchmarkSort measures Sort on random ints of increasing length.
func BenchmarkSort(b *testing.B) {
	cmp := mergesort.Natural[int]()
	for _, n := range []int{16, 1024, 65536} {
		rng := rand.New(rand.NewSource(int64(n)))
		items := make([]int, n)
		for i := range items {
			items[i] = rng.Int()
		}
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = mergesort.Sort(items, cmp)
			}
		})
	}
}
