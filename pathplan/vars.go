package pathplan

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/solver"
)

// positionVars holds the two unknowns of one timestep position.
type positionVars struct {
	x, y solver.Var
}

// declareVariables allocates exactly one (x,y) pair of integer unknowns
// per timestep, bounded by the grid dimensions and keyed
// {Step: t, Comp: X|Y}. Keys are unique by construction, so decoding can
// invert them without ambiguity. Variables are fresh per driver and never
// reused across solves.
func declareVariables(d solver.Driver, g *grid.Grid, horizon int) ([]positionVars, error) {
	vars := make([]positionVars, horizon)
	for t := 0; t < horizon; t++ {
		x, err := d.DeclareInt(solver.Key{Step: t, Comp: solver.CompX}, 0, g.Width-1)
		if err != nil {
			return nil, fmt.Errorf("pathplan: declare x[%d]: %w", t, err)
		}
		y, err := d.DeclareInt(solver.Key{Step: t, Comp: solver.CompY}, 0, g.Height-1)
		if err != nil {
			return nil, fmt.Errorf("pathplan: declare y[%d]: %w", t, err)
		}
		vars[t] = positionVars{x: x, y: y}
	}

	return vars, nil
}
