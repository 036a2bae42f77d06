package pathplan

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/solver"
)

// buildObjective installs the destination-bonus objective: maximize
// Σₜ weight·[posₜ = destination]. The fixed-endpoint variant installs no
// objective — feasibility alone suffices there.
//
// Note the encoding places no arrival-and-stop requirement: once the path
// reaches the destination it may park there, and every parked timestep
// contributes another weight unit to the score.
func buildObjective(d solver.Driver, g *grid.Grid, vars []positionVars, weight int) error {
	dest := g.Destination()
	terms := make([]solver.Term, len(vars))
	for t, pv := range vars {
		terms[t] = solver.Term{
			Weight: weight,
			Cond: solver.All(
				solver.Eq(pv.x, dest.X),
				solver.Eq(pv.y, dest.Y),
			),
		}
	}
	if err := d.Maximize(terms); err != nil {
		return fmt.Errorf("pathplan: set objective: %w", err)
	}

	return nil
}
