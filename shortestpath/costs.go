package shortestpath

import (
	"golang.org/x/exp/constraints"

	"github.com/puzzlekit/puzzlekit/geometry"
	"github.com/puzzlekit/puzzlekit/grid"
)

// Unweighted charges 1 for every step; distances become step counts.
func Unweighted(_, _ geometry.Point) (int64, bool) {
	return 1, true
}

// Blocked rejects every step; only the start itself is reachable.
func Blocked(_, _ geometry.Point) (int64, bool) {
	return 0, false
}

// MaxRise charges 1 per step on a height map but blocks any step that climbs
// more than rise. Descending any amount is allowed, so the graph is directed.
func MaxRise[T constraints.Integer](heights *grid.Grid[T], rise T) CostFunc {
	return func(from, to geometry.Point) (int64, bool) {
		if climbs(heights.Get(from), heights.Get(to), rise) {
			return 0, false
		}
		return 1, true
	}
}

// climbs reports whether to - from > rise without overflowing T.
func climbs[T constraints.Integer](from, to, rise T) bool {
	if to <= from {
		return false
	}
	if rise < 0 {
		return true
	}
	// Two's-complement subtraction in uint64 is exact for any to > from.
	return uint64(to)-uint64(from) > uint64(rise)
}

// CellCost charges the value of the destination cell, skipping cells for
// which blocked reports true. A nil blocked admits every cell.
// Weights above Infinity (possible for 64-bit unsigned types) are charged Infinity.
func CellCost[T constraints.Integer](weights *grid.Grid[T], blocked func(T) bool) CostFunc {
	return func(_, to geometry.Point) (int64, bool) {
		w := weights.Get(to)
		if blocked != nil && blocked(w) {
			return 0, false
		}
		if w > 0 && uint64(w) > uint64(Infinity) {
			return Infinity, true
		}
		return int64(w), true
	}
}
