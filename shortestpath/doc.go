// Package shortestpath computes single-source shortest distances over the
// implicit 4-connected graph of a grid.Grid, with edge costs supplied by the
// caller.
//
// Overview:
//
//   - Vertices are the cells of a grid.Grid; edges join each cell to its
//     in-bounds up/right/down/left neighbours.
//   - A CostFunc decides, for each directed step from → to, either a
//     non-negative cost or that the step is blocked. Blocked steps do not
//     exist in the graph, so asymmetric rules ("climb at most one, descend
//     any amount") need no separate adjacency structure.
//   - The target distance is returned; Infinity means unreachable. An
//     unreachable target is a normal result, not an error. A target that is
//     connected but too expensive to represent yields ErrCostOverflow.
//
// Algorithm (label-setting Dijkstra, no priority queue):
//
//  1. dist = Infinity everywhere except start (0); every cell unvisited.
//  2. For the current cell, relax each unvisited, non-blocked neighbour:
//     dist[n] = min(dist[n], dist[current] + cost).
//  3. Mark current visited. Stop if it is the target.
//  4. Pick the unvisited cell with the smallest tentative distance by a full
//     row-major scan (ties go to the first cell in row-major order).
//     Stop if that distance is Infinity.
//
// The linear scan makes each round O(V) and the whole solve O(V²). This is a
// deliberate trade: puzzle grids hold at most a few thousand cells, and the
// scan keeps selection deterministic and trivially correct.
//
// Complexity:
//
//   - Time:  O(V²) where V = rows×cols.
//   - Space: O(V) for the private distance grid and the unvisited set
//     (plus O(V) predecessors with WithReturnPath).
//
// Options:
//
//   - WithLogger(*slog.Logger): debug trace of every round; discarded by default.
//   - WithReturnPath(): Solve also reconstructs one shortest path.
//
// Errors (sentinel):
//
//   - ErrNilGrid:      the grid is nil.
//   - ErrNilCost:      the cost function is nil.
//   - ErrOutOfBounds:  start or end lies outside the grid.
//   - ErrNegativeCost: the cost function returned a negative cost.
//   - ErrCostOverflow: end is connected to start, but only by paths whose
//     total cost exceeds math.MaxInt64.
//
// Thread safety:
//
//   - A solve only reads the input grid. Concurrent mutation of that grid
//     during a solve is not supported.
package shortestpath
