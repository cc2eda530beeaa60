// Package puzzlekit is a small toolkit for grid and sequence puzzles:
// integer geometry, dense and sparse 2D grids, single-pair shortest paths
// over grid cells, a comparator-driven merge sort and inclusive integer
// ranges.
//
// Packages:
//
//	geometry/             Point arithmetic, sign-magnitude steps, rasterizable Line
//	grid/                 dense row-major Grid[T] and sparse DictGrid[T]
//	shortestpath/         label-setting Dijkstra over Grid cells with a pluggable edge cost
//	mergesort/            stable merge sort driven by a three-valued Comparator
//	mergesort/nested/     nested integer lists, their comparator and a flow-literal parser
//	intrange/             inclusive integer intervals with overlap and containment queries
//
// All packages are pure Go and safe for concurrent use as long as a value is
// not mutated while it is read. Grid and DictGrid are not synchronized.
//
// Quick example:
//
//	g, _ := grid.FromRows([][]int{{1, 1, 9}, {1, 1, 1}})
//	d, _ := shortestpath.ShortestPath(g, geometry.Pt(0, 0), geometry.Pt(2, 1),
//		shortestpath.CellCost(g, nil))
//	fmt.Println(d) // 3
package puzzlekit
