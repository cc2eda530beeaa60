package intrange_test

import (
	"fmt"
	"strings"

	"github.com/puzzlekit/puzzlekit/intrange"
)

// ExampleRange_Overlaps counts camp-cleanup assignment pairs where one range
// contains the other, and pairs that overlap at all.
func ExampleRange_Overlaps() {
	pairs := []string{"2-4,6-8", "2-3,4-5", "5-7,7-9", "2-8,3-7", "6-6,4-6", "2-6,4-8"}

	contained, overlapping := 0, 0
	for _, line := range pairs {
		left, right, _ := strings.Cut(line, ",")
		a, _ := intrange.Parse(left)
		b, _ := intrange.Parse(right)
		if a.ContainsRange(b) || b.ContainsRange(a) {
			contained++
		}
		if a.Overlaps(b) {
			overlapping++
		}
	}
	fmt.Println("contained:", contained)
	fmt.Println("overlapping:", overlapping)
	// Output:
	// contained: 2
	// overlapping: 4
}
