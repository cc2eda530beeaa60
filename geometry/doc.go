// Package geometry provides the 2D integer primitives shared by the puzzle
// toolkit: Point and Line.
//
// What:
//
//   - Point is a comparable (x, y) value with vector arithmetic, in-place
//     movement and unit-step direction (Sign/Unit).
//   - Line is a segment between two Points that can be rasterized into every
//     integer point it covers, provided it is axis-aligned or a 45° diagonal.
//
// Coordinates follow screen convention: x grows to the right, y grows downward,
// so Up is (0,-1). Grid addressing (grid package) is row-major on the same axes.
//
// Why:
//
//   - Rope and robot simulations move points by unit deltas.
//   - Falling-sand simulations draw rock walls as rasterized lines.
//   - Grid pathfinding uses Point as the vertex identity.
//
// Complexity:
//
//   - All Point operations: O(1).
//   - Line.Points: O(max(|dx|,|dy|)).
//
// Errors:
//
//   - ErrNotRasterizable: the line is neither axis-aligned nor diagonal.
package geometry
