package geometry

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// FromPair builds a Point from an (x, y) pair.
func FromPair(xy [2]int) Point {
	return Point{X: xy[0], Y: xy[1]}
}

// Pair returns p as an (x, y) pair.
func (p Point) Pair() [2]int {
	return [2]int{p.X, p.Y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// AddPair returns p translated by the (dx, dy) pair.
func (p Point) AddPair(d [2]int) Point {
	return p.Add(FromPair(d))
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// SubPair returns p translated by the negated (dx, dy) pair.
func (p Point) SubPair(d [2]int) Point {
	return p.Sub(FromPair(d))
}

// Move translates p in place by (dx, dy).
func (p *Point) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// MoveBy translates p in place by delta.
func (p *Point) MoveBy(delta Point) {
	p.Move(delta.X, delta.Y)
}

// MovePair translates p in place by the (dx, dy) pair.
func (p *Point) MovePair(d [2]int) {
	p.Move(d[0], d[1])
}

// Sign clamps each coordinate to -1, 0 or 1 and scales it by magnitude.
// (3,-7).Sign(2) == (2,-2).
func (p Point) Sign(magnitude int) Point {
	return Point{sign(p.X) * magnitude, sign(p.Y) * magnitude}
}

// Unit is Sign(1): the single step that moves towards p's direction.
// For b.Sub(a).Unit() it is the step from a towards b.
func (p Point) Unit() Point {
	return p.Sign(1)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Sqrt(float64(d.X*d.X + d.Y*d.Y))
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	d := p.Sub(q)
	return abs(d.X) + abs(d.Y)
}

// Chebyshev returns the L∞ distance between p and q. Two points touch
// (including diagonally) iff their Chebyshev distance is at most 1.
func (p Point) Chebyshev(q Point) int {
	d := p.Sub(q)
	return max(abs(d.X), abs(d.Y))
}

// Equal reports whether p and q have the same coordinates. Equivalent to p == q.
func (p Point) Equal(q Point) bool {
	return p == q
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
