// Package grid models a rectangular occupancy grid as an immutable value,
// answering the bounds and obstacle queries a path encoder needs.
//
// What:
//
//   - Grid wraps a rectangular [][]int matrix with a tunable ObstacleThreshold.
//   - Cells with value ≥ ObstacleThreshold are obstacles; the rest are free.
//   - Start is fixed at (0,0) and Destination at (W−1,H−1); both must be free.
//   - Distances/MinSteps run a 4-neighbor BFS over free cells, giving exact
//     reachability and the minimal number of moves to the destination.
//
// Why:
//
//   - Constraint encodings need O(1) pure queries, not a mutable map.
//   - BFS distances let callers reject hopeless horizons before invoking a
//     solver, and give tests an independent ground truth.
//
// Complexity:
//
//   - NewGrid:    O(W×H) time and memory (deep copy + validation).
//   - Queries:    O(1).
//   - Distances:  O(W×H) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBlockedEndpoint: start or destination cell is an obstacle.
package grid
