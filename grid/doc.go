// Package grid provides the two cell containers of the puzzle toolkit:
// a dense, fixed-size Grid and a sparse, unbounded DictGrid.
//
// What:
//
//   - Grid[T] stores rows×cols values in a flat row-major slice
//     (index = y*cols + x) and answers bounds-aware 4-neighbour queries.
//   - DictGrid[T] maps geometry.Point to a value for simulations that touch a
//     few hundred cells of a plane with no known bounds.
//
// Addressing:
//
//	Grid has three addressing forms with one semantics:
//
//	  At(i) / SetAt(i, v)           linear index
//	  Get(p) / Set(p, v)            geometry.Point (x = column, y = row)
//	  GetRC(r, c) / SetRC(r, c, v)  (row, col)
//
//	Typed accessors panic on out-of-range addresses, like slice indexing.
//	Lookup is the checked form.
//
// Neighbours:
//
//	Neighbours(p) returns up, right, down, left in that order, skipping any
//	that fall outside [0,cols)×[0,rows). Callers may rely on the order.
//
// Absence:
//
//	DictGrid.Get returns (value, ok). An untouched coordinate is reported as
//	absent, never as a zero value; check ok before using the value.
//
// Complexity:
//
//   - Grid access, Neighbours: O(1).
//   - Find / FindFunc: O(rows×cols), first row-major match wins.
//   - DictGrid.AddPoint / Get: O(1) average.
//   - DictGrid.AddLine: O(line length).
//   - DictGrid.Bounds / Count: O(occupied cells).
//
// Errors:
//
//   - ErrMissingDimension: New was given neither WithRows nor WithCols.
//   - ErrBadDimension: a dimension is not positive.
//   - ErrRaggedValues: len(values) is not a multiple of the dimension hint.
//   - ErrEmptyGrid: no values, or no rows / columns.
//   - ErrNonRectangular: FromRows got rows of differing lengths.
package grid
