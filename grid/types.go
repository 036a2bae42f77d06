// Package grid defines core types, options, and sentinel errors for the
// grid subpackage of github.com/katalvlaran/gridpath.
package grid

import "fmt"

// Position is a grid coordinate. Positions are compared by value and carry
// no identity of their own.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// ObstacleThreshold specifies the minimum cell value considered an
	// obstacle. The magnitude above the threshold carries no meaning.
	ObstacleThreshold int
}

// DefaultGridOptions returns a GridOptions with default settings:
// ObstacleThreshold=1 (any positive cell value is an obstacle).
func DefaultGridOptions() GridOptions {
	return GridOptions{ObstacleThreshold: 1}
}

// Grid is an immutable rectangular occupancy grid. Width and Height define
// dimensions; cells[y][x] holds the original input value. The threshold is
// fixed from GridOptions at construction.
type Grid struct {
	Width, Height int
	cells         [][]int
	threshold     int
}
