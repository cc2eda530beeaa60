package geometry

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrNotRasterizable indicates a line that is neither axis-aligned nor a 45° diagonal.
	ErrNotRasterizable = errors.New("geometry: line must be axis-aligned or diagonal")
)

// Point is an integer position (or delta) on the plane.
// The zero value is the origin.
type Point struct {
	X, Y int
}

// Unit direction deltas in screen coordinates (y grows downward).
var (
	Up    = Point{0, -1}
	Right = Point{1, 0}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
)

// Orthogonal lists the four axis-aligned directions clockwise, starting up.
var Orthogonal = [4]Point{Up, Right, Down, Left}

// Line is the straight segment from A to B, both ends inclusive.
type Line struct {
	A, B Point
}
