package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/puzzlekit/geometry"
	"github.com/puzzlekit/puzzlekit/grid"
)

// TestDictGrid_Absence verifies that untouched points are reported absent,
// never as a zero value.
func TestDictGrid_Absence(t *testing.T) {
	d := grid.NewDictGrid[int]()
	d.AddPoint(geometry.Pt(3, 4), 0)

	v, ok := d.Get(geometry.Pt(3, 4))
	assert.True(t, ok, "explicitly stored zero must be present")
	assert.Equal(t, 0, v)

	_, ok = d.Get(geometry.Pt(4, 3))
	assert.False(t, ok)
	assert.False(t, d.Has(geometry.Pt(-1000, 1000)))
	assert.Equal(t, 1, d.Len())
}

// TestDictGrid_AddLine rasterizes the two rock paths of the sand sample.
//
//	498,4 -> 498,6 -> 496,6
//	503,4 -> 502,4 -> 502,9 -> 494,9
func TestDictGrid_AddLine(t *testing.T) {
	d := grid.NewDictGrid[rune]()
	paths := [][]geometry.Point{
		{{X: 498, Y: 4}, {X: 498, Y: 6}, {X: 496, Y: 6}},
		{{X: 503, Y: 4}, {X: 502, Y: 4}, {X: 502, Y: 9}, {X: 494, Y: 9}},
	}
	for _, path := range paths {
		for i := 1; i < len(path); i++ {
			require.NoError(t, d.AddLine(path[i-1], path[i], '#'))
		}
	}

	// 5 + 15 rocks, with shared corners counted once.
	assert.Equal(t, 20, d.Len())
	assert.True(t, d.Has(geometry.Pt(498, 5)))
	assert.True(t, d.Has(geometry.Pt(497, 6)))
	assert.True(t, d.Has(geometry.Pt(494, 9)))
	assert.False(t, d.Has(geometry.Pt(500, 0)))

	lo, hi, ok := d.Bounds()
	require.True(t, ok)
	assert.Equal(t, geometry.Pt(494, 4), lo)
	assert.Equal(t, geometry.Pt(503, 9), hi)
}

// TestDictGrid_AddLineRejects ensures skewed segments write nothing.
func TestDictGrid_AddLineRejects(t *testing.T) {
	d := grid.NewDictGrid[int]()
	err := d.AddLine(geometry.Pt(0, 0), geometry.Pt(1, 3), 1)
	assert.ErrorIs(t, err, geometry.ErrNotRasterizable)
	assert.Zero(t, d.Len())
}

// TestDictGrid_Diagonal covers 45° segments.
func TestDictGrid_Diagonal(t *testing.T) {
	d := grid.NewDictGrid[int]()
	require.NoError(t, d.AddLine(geometry.Pt(0, 0), geometry.Pt(3, -3), 1))
	for i := 0; i <= 3; i++ {
		assert.True(t, d.Has(geometry.Pt(i, -i)))
	}
	assert.Equal(t, 4, d.Len())
}

// TestDictGrid_CountAndAll checks counting and full iteration.
func TestDictGrid_CountAndAll(t *testing.T) {
	d := grid.NewDictGrid[string]()
	d.AddPoint(geometry.Pt(0, 0), "rock")
	d.AddPoint(geometry.Pt(1, 0), "sand")
	d.AddPoint(geometry.Pt(2, 0), "sand")
	d.AddPoint(geometry.Pt(2, 0), "rock") // overwrite

	assert.Equal(t, 1, d.Count(func(v string) bool { return v == "sand" }))
	assert.Equal(t, 2, d.Count(func(v string) bool { return v == "rock" }))

	seen := map[geometry.Point]string{}
	for p, v := range d.All() {
		seen[p] = v
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, "rock", seen[geometry.Pt(2, 0)])
}

// TestDictGrid_EmptyBounds: an empty grid has no bounds.
func TestDictGrid_EmptyBounds(t *testing.T) {
	_, _, ok := grid.NewDictGrid[int]().Bounds()
	assert.False(t, ok)
}

// TestDictGrid_ZeroValue verifies that a declared DictGrid accepts writes
// without NewDictGrid.
func TestDictGrid_ZeroValue(t *testing.T) {
	var d grid.DictGrid[int]
	assert.Equal(t, 0, d.Len())
	_, ok := d.Get(geometry.Pt(1, 1))
	assert.False(t, ok)
	_, _, ok = d.Bounds()
	assert.False(t, ok)

	assert.NotPanics(t, func() { d.AddPoint(geometry.Pt(1, 1), 7) })
	v, ok := d.Get(geometry.Pt(1, 1))
	require.True(t, ok)
	assert.Equal(t, 7, v)

	var lined grid.DictGrid[int]
	require.NoError(t, lined.AddLine(geometry.Pt(0, 0), geometry.Pt(0, 2), 1))
	assert.Equal(t, 3, lined.Len())
}
