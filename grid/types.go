// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/puzzlekit/puzzlekit.
package grid

import (
	"errors"

	"github.com/puzzlekit/puzzlekit/geometry"
)

// Sentinel errors for grid construction.
var (
	// ErrMissingDimension indicates New was called without a row or column hint.
	ErrMissingDimension = errors.New("grid: one of WithRows or WithCols is required")
	// ErrBadDimension indicates a row or column count that is not positive.
	ErrBadDimension = errors.New("grid: dimensions must be positive")
	// ErrRaggedValues indicates the value count is not divisible by the dimension hint.
	ErrRaggedValues = errors.New("grid: value count is not a multiple of the dimension")
	// ErrEmptyGrid indicates the input has no values, rows or columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Options holds the dimension hint for New. Exactly one of Rows or Cols is
// normally set; if both are, Cols wins and Rows must agree.
type Options struct {
	Rows int // number of rows; 0 means derive
	Cols int // number of columns; 0 means derive
}

// Option configures New.
type Option func(*Options)

// WithRows fixes the number of rows; columns are derived.
func WithRows(n int) Option {
	return func(o *Options) {
		o.Rows = n
	}
}

// WithCols fixes the number of columns; rows are derived.
func WithCols(n int) Option {
	return func(o *Options) {
		o.Cols = n
	}
}

// Grid is a dense rows×cols array of values stored row-major.
// Invariant: len(values) == rows*cols.
// A Grid is not safe for concurrent mutation.
type Grid[T any] struct {
	rows, cols int
	values     []T
}

// DictGrid is a sparse map from coordinate to value standing in for an
// infinite plane. Cells are only ever added or overwritten, never removed.
// The zero value is an empty DictGrid ready to use.
// A DictGrid is not safe for concurrent mutation.
type DictGrid[T any] struct {
	cells map[geometry.Point]T
}
