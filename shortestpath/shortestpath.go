package shortestpath

import (
	"fmt"
	"log/slog"

	"github.com/puzzlekit/puzzlekit/geometry"
	"github.com/puzzlekit/puzzlekit/grid"
)

// ShortestPath returns the minimum total cost from start to end over g's
// 4-connected adjacency, or Infinity if end cannot be reached.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. cost must be non-nil (ErrNilCost).
//  3. start and end must lie inside g (ErrOutOfBounds).
//
// During the search a negative cost aborts with ErrNegativeCost. If end is
// connected to start but no path fits in an int64, ErrCostOverflow is
// returned rather than Infinity.
// ShortestPath(g, s, s, anyCost) == 0.
//
// Complexity: O(V²) time, O(V) space.
func ShortestPath[T any](g *grid.Grid[T], start, end geometry.Point, cost CostFunc, opts ...Option) (int64, error) {
	res, err := Solve(g, start, end, cost, opts...)
	if err != nil {
		return Infinity, err
	}
	return res.Distance, nil
}

// Solve runs the same search as ShortestPath and reports the full Result.
// With WithReturnPath the Path field holds one shortest path from start to
// end inclusive.
func Solve[T any](g *grid.Grid[T], start, end geometry.Point, cost CostFunc, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{Distance: Infinity}, ErrNilGrid
	}
	if cost == nil {
		return Result{Distance: Infinity}, ErrNilCost
	}
	for _, p := range []geometry.Point{start, end} {
		if !g.InBounds(p) {
			return Result{Distance: Infinity}, fmt.Errorf("%w: %s not in %s", ErrOutOfBounds, p, g)
		}
	}

	r, err := newRunner(g, cost, cfg)
	if err != nil {
		return Result{Distance: Infinity}, err
	}
	r.init(start)
	if err = r.process(start, end); err != nil {
		return Result{Distance: Infinity}, err
	}

	if !Reachable(r.dist.Get(end)) && r.overflowed && r.connected(start, end) {
		return Result{Distance: Infinity}, fmt.Errorf("%w: %s→%s", ErrCostOverflow, start, end)
	}

	res := Result{
		Distance: r.dist.Get(end),
		Visited:  r.visited,
	}
	if cfg.ReturnPath && Reachable(res.Distance) {
		res.Path = r.path(start, end)
	}
	return res, nil
}

// runner holds the mutable state for a single solve.
// None of it outlives the call that created it.
type runner[T any] struct {
	g          *grid.Grid[T]     // input grid; read-only
	cost       CostFunc          // caller-supplied edge rule
	log        *slog.Logger      // per-round trace
	dist       *grid.Grid[int64] // tentative distances, same shape as g
	unvisited  []bool            // row-major membership of the unvisited set
	remaining  int               // number of true entries in unvisited
	prev       []int             // row-major predecessor index; nil unless ReturnPath
	visited    int               // cells finalized so far
	overflowed bool              // some relaxation exceeded Infinity
}

func newRunner[T any](g *grid.Grid[T], cost CostFunc, cfg Options) (*runner[T], error) {
	rows, cols := g.Size()
	dist, err := grid.Filled(rows, cols, Infinity)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: distance grid: %w", err)
	}
	r := &runner[T]{
		g:         g,
		cost:      cost,
		log:       cfg.Logger,
		dist:      dist,
		unvisited: make([]bool, g.Len()),
		remaining: g.Len(),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, g.Len())
	}
	return r, nil
}

// init marks every cell unvisited and sets dist[start] = 0.
func (r *runner[T]) init(start geometry.Point) {
	for i := range r.unvisited {
		r.unvisited[i] = true
	}
	for i := range r.prev {
		r.prev[i] = -1
	}
	r.dist.Set(start, 0)
}

// process is the main loop: relax the current cell, retire it, then pick the
// closest unvisited cell by linear scan.
//
// Loop termination conditions:
//
//   - The target has just been retired.
//   - No unvisited cell remains, or the closest one is at Infinity.
func (r *runner[T]) process(start, end geometry.Point) error {
	current := start
	for {
		if err := r.relax(current); err != nil {
			return err
		}
		r.unvisited[r.dist.IndexOf(current)] = false
		r.remaining--
		r.visited++
		r.log.Debug("visit",
			slog.String("current", current.String()),
			slog.Int64("dist", r.dist.Get(current)),
			slog.Int("unvisited", r.remaining),
		)

		if current == end {
			return nil
		}
		next, ok := r.closest()
		if !ok {
			r.log.Debug("unreachable", slog.String("end", end.String()), slog.Int("visited", r.visited))
			return nil
		}
		current = next
	}
}

// relax tries to improve the tentative distance of every unvisited,
// non-blocked neighbour of u.
func (r *runner[T]) relax(u geometry.Point) error {
	du := r.dist.Get(u)
	for _, v := range r.g.Neighbours(u) {
		iv := r.dist.IndexOf(v)
		if !r.unvisited[iv] {
			continue
		}
		w, ok := r.cost(u, v)
		if !ok {
			continue // blocked
		}
		if w < 0 {
			return fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, u, v, w)
		}
		if w >= Infinity-du {
			r.overflowed = true
			continue
		}
		if nd := du + w; nd < r.dist.At(iv) {
			r.dist.SetAt(iv, nd)
			if r.prev != nil {
				r.prev[iv] = r.dist.IndexOf(u)
			}
		}
	}
	return nil
}

// closest scans the whole unvisited set in row-major order and returns the
// first cell with the smallest finite tentative distance.
func (r *runner[T]) closest() (geometry.Point, bool) {
	best, bestDist := -1, Infinity
	for i, open := range r.unvisited {
		if open && r.dist.At(i) < bestDist {
			best, bestDist = i, r.dist.At(i)
		}
	}
	if best < 0 {
		return geometry.Point{}, false
	}
	return r.dist.PointOf(best), true
}

// connected reports whether end can be reached from start through
// non-blocked steps, ignoring their costs.
func (r *runner[T]) connected(start, end geometry.Point) bool {
	seen := make([]bool, r.g.Len())
	seen[r.g.IndexOf(start)] = true
	queue := []geometry.Point{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == end {
			return true
		}
		for _, v := range r.g.Neighbours(u) {
			iv := r.g.IndexOf(v)
			if seen[iv] {
				continue
			}
			if _, ok := r.cost(u, v); ok {
				seen[iv] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

// path walks predecessors back from end.
func (r *runner[T]) path(start, end geometry.Point) []geometry.Point {
	var rev []geometry.Point
	for at := r.dist.IndexOf(end); at >= 0; at = r.prev[at] {
		rev = append(rev, r.dist.PointOf(at))
		if r.dist.PointOf(at) == start {
			break
		}
	}
	out := make([]geometry.Point, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}
