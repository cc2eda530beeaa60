// Package shortestpath defines core types and configuration options
// for grid shortest-path solving.
package shortestpath

import (
	"errors"
	"log/slog"
	"math"

	"github.com/puzzlekit/puzzlekit/geometry"
)

// Infinity is the distance reported for unreachable cells.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the solver.
var (
	// ErrNilGrid indicates that a nil grid was passed.
	ErrNilGrid = errors.New("shortestpath: grid is nil")

	// ErrNilCost indicates that a nil CostFunc was passed.
	ErrNilCost = errors.New("shortestpath: cost function is nil")

	// ErrOutOfBounds indicates that start or end lies outside the grid.
	ErrOutOfBounds = errors.New("shortestpath: point outside grid")

	// ErrNegativeCost indicates that the cost function produced a negative cost,
	// which label-setting search cannot handle.
	ErrNegativeCost = errors.New("shortestpath: negative edge cost")

	// ErrCostOverflow indicates that end is connected to start but every path
	// costs more than an int64 can hold.
	ErrCostOverflow = errors.New("shortestpath: path cost overflows int64")

	// ErrNilLogger indicates WithLogger was given a nil logger.
	ErrNilLogger = errors.New("shortestpath: logger is nil")
)

// CostFunc returns the cost of stepping from one cell to an adjacent one.
// ok == false means the step is blocked and does not exist in the graph.
// It is only ever called for grid-adjacent pairs and must be pure.
type CostFunc func(from, to geometry.Point) (cost int64, ok bool)

// Options configures a solve.
//
// Logger     – receives a debug record per round; discarded by default.
// ReturnPath – if true, Solve reconstructs one shortest path.
type Options struct {
	Logger     *slog.Logger
	ReturnPath bool
}

// Option represents a functional option for configuring a solve.
type Option func(*Options)

// WithLogger routes the per-round trace to l. Passing nil panics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = l
	}
}

// WithReturnPath enables path reconstruction in Solve.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns a silent configuration without path reconstruction.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.DiscardHandler),
		ReturnPath: false,
	}
}

// Result is the outcome of Solve.
//
// Distance – cost from start to end, or Infinity if unreachable.
// Path     – start..end inclusive; nil if unreachable or not requested.
// Visited  – number of cells finalized before the search stopped.
type Result struct {
	Distance int64
	Path     []geometry.Point
	Visited  int
}

// Reachable reports whether d is a finite distance.
func Reachable(d int64) bool {
	return d != Infinity
}
