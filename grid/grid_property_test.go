//go:build property
// +build property

package grid_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/puzzlekit/puzzlekit/geometry"
	"github.com/puzzlekit/puzzlekit/grid"
)

// TestGridProperties checks addressing and neighbourhood invariants on
// randomly sized grids.
func TestGridProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	// Property: index -> point -> index is the identity, and Get agrees with At
	properties.Property("row-major addressing round-trips", prop.ForAll(
		func(rows, cols, seed int) bool {
			g, err := grid.Filled(rows, cols, 0)
			if err != nil {
				return false
			}
			for i := 0; i < g.Len(); i++ {
				g.SetAt(i, i*seed)
			}
			i := seed % g.Len()
			p := g.PointOf(i)
			return g.IndexOf(p) == i &&
				p.Y*cols+p.X == i &&
				g.Get(p) == g.At(i) &&
				g.GetRC(p.Y, p.X) == g.At(i)
		},
		gen.IntRange(1, 12),
		gen.IntRange(1, 12),
		gen.IntRange(0, 1000),
	))

	// Property: neighbours are 2..4 distinct in-bound orthogonal cells in clockwise order
	properties.Property("neighbours are in bounds and ordered", prop.ForAll(
		func(rows, cols, x, y int) bool {
			g, err := grid.Filled(rows, cols, struct{}{})
			if err != nil {
				return false
			}
			p := geometry.Pt(x%cols, y%rows)
			ns := g.Neighbours(p)
			if len(ns) < 2 || len(ns) > 4 {
				return false
			}
			last := -1
			for _, n := range ns {
				if n == p || !g.InBounds(n) || p.Manhattan(n) != 1 {
					return false
				}
				dir := -1
				for k, d := range geometry.Orthogonal {
					if p.Add(d) == n {
						dir = k
					}
				}
				if dir <= last {
					return false
				}
				last = dir
			}
			return true
		},
		gen.IntRange(2, 12),
		gen.IntRange(2, 12),
		gen.IntRange(0, 100),
		gen.IntRange(0, 100),
	))

	// Property: ByRow and ByCol see every value exactly once
	properties.Property("rows and columns cover the grid", prop.ForAll(
		func(rows, cols int) bool {
			g, err := grid.Filled(rows, cols, 0)
			if err != nil {
				return false
			}
			for i := 0; i < g.Len(); i++ {
				g.SetAt(i, i)
			}
			rowSum, colSum := 0, 0
			for _, row := range g.ByRow() {
				for _, v := range row {
					rowSum += v
				}
			}
			for _, col := range g.ByCol() {
				for _, v := range col {
					colSum += v
				}
			}
			n := g.Len()
			return rowSum == n*(n-1)/2 && colSum == rowSum
		},
		gen.IntRange(1, 12),
		gen.IntRange(1, 12),
	))

	properties.TestingRun(t)
}
