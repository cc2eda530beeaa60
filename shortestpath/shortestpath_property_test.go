//go:build property
// +build property

package shortestpath_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/puzzlekit/puzzlekit/geometry"
	"github.com/puzzlekit/puzzlekit/grid"
	"github.com/puzzlekit/puzzlekit/shortestpath"
)

// TestShortestPathProperties checks distance invariants on open and fully
// blocked grids of random size.
func TestShortestPathProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	// Property: a point is always at distance zero from itself
	properties.Property("start equals end costs zero", prop.ForAll(
		func(rows, cols, x, y int) bool {
			g, err := grid.Filled(rows, cols, 0)
			if err != nil {
				return false
			}
			p := geometry.Pt(x%cols, y%rows)
			d, err := shortestpath.ShortestPath(g, p, p, shortestpath.Blocked)
			return err == nil && d == 0
		},
		gen.IntRange(1, 8),
		gen.IntRange(1, 8),
		gen.IntRange(0, 100),
		gen.IntRange(0, 100),
	))

	// Property: with every move blocked, any other cell is unreachable
	properties.Property("all blocked is unreachable", prop.ForAll(
		func(rows, cols, a, b int) bool {
			g, err := grid.Filled(rows, cols, 0)
			if err != nil {
				return false
			}
			s, e := g.PointOf(a%g.Len()), g.PointOf(b%g.Len())
			if s == e {
				return true
			}
			d, err := shortestpath.ShortestPath(g, s, e, shortestpath.Blocked)
			return err == nil && d == shortestpath.Infinity
		},
		gen.IntRange(1, 8),
		gen.IntRange(1, 8),
		gen.IntRange(0, 100),
		gen.IntRange(0, 100),
	))

	// Property: on an open unit-cost grid the distance is the Manhattan distance
	properties.Property("unweighted equals manhattan", prop.ForAll(
		func(rows, cols, a, b int) bool {
			g, err := grid.Filled(rows, cols, 0)
			if err != nil {
				return false
			}
			s, e := g.PointOf(a%g.Len()), g.PointOf(b%g.Len())
			d, err := shortestpath.ShortestPath(g, s, e, shortestpath.Unweighted)
			return err == nil && d == int64(s.Manhattan(e))
		},
		gen.IntRange(1, 8),
		gen.IntRange(1, 8),
		gen.IntRange(0, 100),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
