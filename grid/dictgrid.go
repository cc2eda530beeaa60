package grid

import (
	"fmt"
	"iter"

	"github.com/puzzlekit/puzzlekit/geometry"
)

// NewDictGrid returns an empty sparse grid.
func NewDictGrid[T any]() *DictGrid[T] {
	return &DictGrid[T]{cells: make(map[geometry.Point]T)}
}

// AddPoint sets the value at p, overwriting any previous value.
func (d *DictGrid[T]) AddPoint(p geometry.Point, v T) {
	if d.cells == nil {
		d.cells = make(map[geometry.Point]T)
	}
	d.cells[p] = v
}

// AddLine marks every integer point on the segment a→b (inclusive) with v.
// The segment must be axis-aligned or diagonal; otherwise nothing is written
// and the returned error wraps geometry.ErrNotRasterizable.
// Complexity: O(Chebyshev(a, b)).
func (d *DictGrid[T]) AddLine(a, b geometry.Point, v T) error {
	l, err := geometry.NewLine(a, b)
	if err != nil {
		return fmt.Errorf("grid: add line: %w", err)
	}
	for p := range l.Points() {
		d.AddPoint(p, v)
	}
	return nil
}

// Get returns the value stored at p and whether p is occupied.
func (d *DictGrid[T]) Get(p geometry.Point) (T, bool) {
	v, ok := d.cells[p]
	return v, ok
}

// Has reports whether p is occupied.
func (d *DictGrid[T]) Has(p geometry.Point) bool {
	_, ok := d.cells[p]
	return ok
}

// Len returns the number of occupied cells.
func (d *DictGrid[T]) Len() int {
	return len(d.cells)
}

// Bounds returns the component-wise minimum and maximum of all occupied
// coordinates. ok is false for an empty grid.
// Complexity: O(Len).
func (d *DictGrid[T]) Bounds() (lo, hi geometry.Point, ok bool) {
	for p := range d.cells {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi, ok
}

// Count returns how many occupied cells hold a value satisfying pred.
func (d *DictGrid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range d.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// All yields every occupied cell in unspecified order.
func (d *DictGrid[T]) All() iter.Seq2[geometry.Point, T] {
	return func(yield func(geometry.Point, T) bool) {
		for p, v := range d.cells {
			if !yield(p, v) {
				return
			}
		}
	}
}
