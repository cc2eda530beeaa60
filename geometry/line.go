package geometry

import (
	"fmt"
	"iter"
)

// NewLine returns the segment a→b, rejecting segments that cannot be
// rasterized by unit steps (anything but horizontal, vertical or 45°).
func NewLine(a, b Point) (Line, error) {
	l := Line{A: a, B: b}
	if !l.Rasterizable() {
		return Line{}, fmt.Errorf("%w: %s", ErrNotRasterizable, l)
	}
	return l, nil
}

// Rasterizable reports whether repeated unit steps from A reach B exactly.
func (l Line) Rasterizable() bool {
	d := l.B.Sub(l.A)
	return d.X == 0 || d.Y == 0 || abs(d.X) == abs(d.Y)
}

// Points yields every integer point from A to B inclusive, stepping by
// (B-A).Unit(). A degenerate line (A == B) yields a single point.
// A non-rasterizable line yields nothing; check Rasterizable or build the
// line with NewLine first.
//
// Complexity: O(Chebyshev(A, B)).
func (l Line) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !l.Rasterizable() {
			return
		}
		step := l.B.Sub(l.A).Unit()
		cur := l.A
		if !yield(cur) {
			return
		}
		for cur != l.B {
			cur.MoveBy(step)
			if !yield(cur) {
				return
			}
		}
	}
}

// Len returns the Euclidean length of the segment.
func (l Line) Len() float64 {
	return l.A.Distance(l.B)
}

// String renders the line as "(ax,ay -> bx,by)".
func (l Line) String() string {
	return fmt.Sprintf("(%d,%d -> %d,%d)", l.A.X, l.A.Y, l.B.X, l.B.Y)
}
