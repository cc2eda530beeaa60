package grid

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/puzzlekit/puzzlekit/geometry"
)

// New builds a Grid over values, which must arrive row by row.
// One of WithRows or WithCols fixes a dimension; the other is derived by
// integer division. The grid takes ownership of values; it is not copied.
//
// Returns ErrMissingDimension without a hint, ErrBadDimension for a
// non-positive hint, ErrEmptyGrid for no values, and ErrRaggedValues when the
// division leaves a remainder.
// Complexity: O(1).
func New[T any](values []T, opts ...Option) (*Grid[T], error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rows == 0 && cfg.Cols == 0 {
		return nil, ErrMissingDimension
	}
	if cfg.Rows < 0 || cfg.Cols < 0 {
		return nil, ErrBadDimension
	}
	if len(values) == 0 {
		return nil, ErrEmptyGrid
	}

	n := len(values)
	rows, cols := cfg.Rows, cfg.Cols
	switch {
	case cols > 0:
		if n%cols != 0 {
			return nil, fmt.Errorf("%w: %d values, %d columns", ErrRaggedValues, n, cols)
		}
		if rows > 0 && rows != n/cols {
			return nil, fmt.Errorf("%w: %d values, %d×%d", ErrRaggedValues, n, rows, cols)
		}
		rows = n / cols
	default:
		if n%rows != 0 {
			return nil, fmt.Errorf("%w: %d values, %d rows", ErrRaggedValues, n, rows)
		}
		cols = n / rows
	}

	return &Grid[T]{rows: rows, cols: cols, values: values}, nil
}

// Filled builds a rows×cols Grid with every cell set to fill.
// Returns ErrBadDimension if either side is not positive.
// Complexity: O(rows×cols).
func Filled[T any](rows, cols int, fill T) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDimension, rows, cols)
	}
	values := make([]T, rows*cols)
	for i := range values {
		values[i] = fill
	}
	return &Grid[T]{rows: rows, cols: cols, values: values}, nil
}

// FromRows builds a Grid from a non-empty, rectangular 2D slice.
// The input is copied. Returns ErrEmptyGrid or ErrNonRectangular.
// Complexity: O(rows×cols).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	values := make([]T, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		values = append(values, row...)
	}
	return &Grid[T]{rows: h, cols: w, values: values}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Size returns (rows, cols).
func (g *Grid[T]) Size() (rows, cols int) { return g.rows, g.cols }

// Len returns rows×cols.
func (g *Grid[T]) Len() int { return len(g.values) }

// InBounds reports whether p lies within [0,cols)×[0,rows).
// Complexity: O(1).
func (g *Grid[T]) InBounds(p geometry.Point) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// IndexOf maps p to its row-major index y*cols + x.
// The result is meaningless for points outside the grid.
func (g *Grid[T]) IndexOf(p geometry.Point) int {
	return p.Y*g.cols + p.X
}

// PointOf converts a row-major index back to a Point.
func (g *Grid[T]) PointOf(i int) geometry.Point {
	return geometry.Pt(i%g.cols, i/g.cols)
}

// At returns the value at linear index i.
func (g *Grid[T]) At(i int) T {
	return g.values[i]
}

// SetAt stores v at linear index i.
func (g *Grid[T]) SetAt(i int, v T) {
	g.values[i] = v
}

// Get returns the value at p. It panics if p is out of bounds.
func (g *Grid[T]) Get(p geometry.Point) T {
	g.mustContain(p)
	return g.values[g.IndexOf(p)]
}

// Set stores v at p. It panics if p is out of bounds.
func (g *Grid[T]) Set(p geometry.Point, v T) {
	g.mustContain(p)
	g.values[g.IndexOf(p)] = v
}

// Lookup returns the value at p and whether p is in bounds.
func (g *Grid[T]) Lookup(p geometry.Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.values[g.IndexOf(p)], true
}

// GetRC returns the value at (row, col).
func (g *Grid[T]) GetRC(row, col int) T {
	return g.Get(geometry.Pt(col, row))
}

// SetRC stores v at (row, col).
func (g *Grid[T]) SetRC(row, col int, v T) {
	g.Set(geometry.Pt(col, row), v)
}

// Neighbours returns the in-bounds axis-aligned neighbours of p in the fixed
// clockwise order up, right, down, left.
// Complexity: O(1).
func (g *Grid[T]) Neighbours(p geometry.Point) []geometry.Point {
	out := make([]geometry.Point, 0, len(geometry.Orthogonal))
	for _, d := range geometry.Orthogonal {
		if n := p.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// FindFunc returns the first point, in row-major order, whose value
// satisfies pred.
// Complexity: O(rows×cols).
func (g *Grid[T]) FindFunc(pred func(T) bool) (geometry.Point, bool) {
	for i, v := range g.values {
		if pred(v) {
			return g.PointOf(i), true
		}
	}
	return geometry.Point{}, false
}

// Find returns the position of the first cell equal to v in row-major order.
// With duplicates the first match wins; this is intentional, not a bug.
func Find[T comparable](g *Grid[T], v T) (geometry.Point, bool) {
	return g.FindFunc(func(x T) bool { return x == v })
}

// ByRow yields each row index with a copy of that row.
func (g *Grid[T]) ByRow() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < g.rows; r++ {
			row := make([]T, g.cols)
			copy(row, g.values[r*g.cols:(r+1)*g.cols])
			if !yield(r, row) {
				return
			}
		}
	}
}

// ByCol yields each column index with a copy of that column, top to bottom.
func (g *Grid[T]) ByCol() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for c := 0; c < g.cols; c++ {
			col := make([]T, g.rows)
			for r := range col {
				col[r] = g.values[r*g.cols+c]
			}
			if !yield(c, col) {
				return
			}
		}
	}
}

// Values yields every value in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the grid's backing slice.
func (g *Grid[T]) Clone() *Grid[T] {
	values := make([]T, len(g.values))
	copy(values, g.values)
	return &Grid[T]{rows: g.rows, cols: g.cols, values: values}
}

// String renders the grid's size as "Grid(rows, cols)".
func (g *Grid[T]) String() string {
	return fmt.Sprintf("Grid(%d, %d)", g.rows, g.cols)
}

// Pretty renders every row as "[ a, b, c ]" with values right-aligned to the
// widest one (counted in runes), rows separated by newlines.
func (g *Grid[T]) Pretty() string {
	cells := make([]string, len(g.values))
	width := 0
	for i, v := range g.values {
		cells[i] = fmt.Sprint(v)
		width = max(width, utf8.RuneCountInString(cells[i]))
	}
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[ ")
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%*s", width, cells[r*g.cols+c])
		}
		sb.WriteString(" ]")
	}
	return sb.String()
}

func (g *Grid[T]) mustContain(p geometry.Point) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: point %s out of bounds for %s", p, g))
	}
}
