package pathplan

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/solver"
)

// decodePath resolves every timestep position from the model by its
// structured key, in timestep order. Solver iteration order is never
// consulted. A missing value means the driver broke its contract: the
// error is propagated, never papered over with a default, and no partial
// path is returned.
func decodePath(d solver.Driver, horizon int) (Path, error) {
	path := make(Path, horizon)
	for t := 0; t < horizon; t++ {
		x, err := d.Value(solver.Key{Step: t, Comp: solver.CompX})
		if err != nil {
			return nil, fmt.Errorf("%w: x[%d]: %v", ErrSolverContract, t, err)
		}
		y, err := d.Value(solver.Key{Step: t, Comp: solver.CompY})
		if err != nil {
			return nil, fmt.Errorf("%w: y[%d]: %v", ErrSolverContract, t, err)
		}
		path[t] = grid.Position{X: x, Y: y}
	}

	return path, nil
}

// scoreOf counts destination-coincident timesteps, weighted.
func scoreOf(path Path, dest grid.Position, weight int) int {
	hits := 0
	for _, p := range path {
		if p == dest {
			hits++
		}
	}

	return hits * weight
}
