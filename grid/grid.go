// Package grid provides an immutable occupancy-grid model for path
// encodings: bounds and obstacle queries plus BFS reachability.
package grid

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBlockedEndpoint if
// the start (0,0) or destination (W−1,H−1) cell is an obstacle.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	g := &Grid{
		Width:     w,
		Height:    h,
		cells:     cells,
		threshold: opts.ObstacleThreshold,
	}
	if g.IsObstacle(g.Start()) || g.IsObstacle(g.Destination()) {
		return nil, ErrBlockedEndpoint
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsObstacle reports whether p is an obstacle cell. Out-of-bounds positions
// report false; bounds are checked separately via InBounds.
// Complexity: O(1).
func (g *Grid) IsObstacle(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells[p.Y][p.X] >= g.threshold
}

// Start returns the fixed start position (0,0).
func (g *Grid) Start() Position {
	return Position{X: 0, Y: 0}
}

// Destination returns the fixed destination position (W−1,H−1).
func (g *Grid) Destination() Position {
	return Position{X: g.Width - 1, Y: g.Height - 1}
}

// Obstacles returns every obstacle position in row-major order. The order
// is deterministic so constraint emission stays reproducible.
// Complexity: O(W×H).
func (g *Grid) Obstacles() []Position {
	var obs []Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] >= g.threshold {
				obs = append(obs, Position{X: x, Y: y})
			}
		}
	}

	return obs
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Y*g.Width + p.X
}

// coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) coordinate(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}
