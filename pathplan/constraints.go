package pathplan

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/solver"
)

// buildConstraints emits the full spatial constraint system:
//
//   - bounds: carried by the declared variable ranges;
//   - adjacency (t > 0): Manhattan distance between consecutive positions
//     ≤ 1, which permits zero displacement — a path may wait in place;
//   - obstacle exclusion: for every obstacle o and timestep t, the
//     disjunction (xₜ ≠ o.X) ∨ (yₜ ≠ o.Y). The exclusion is per-cell and
//     non-convex; a single inequality cannot express it;
//   - boundary conditions: t=0 pinned to the start, and for FixedEndpoint
//     also t=T−1 pinned to the destination.
func buildConstraints(d solver.Driver, g *grid.Grid, vars []positionVars, variant Variant) error {
	start := g.Start()
	if err := assertAll(d,
		solver.Eq(vars[0].x, start.X),
		solver.Eq(vars[0].y, start.Y),
	); err != nil {
		return err
	}

	// |dx| ≤ 1 ∧ |dy| ≤ 1 ∧ (dx = 0 ∨ dy = 0) is exactly |dx|+|dy| ≤ 1.
	for t := 1; t < len(vars); t++ {
		prev, cur := vars[t-1], vars[t]
		if err := assertAll(d,
			solver.WithinOne(cur.x, prev.x),
			solver.WithinOne(cur.y, prev.y),
			solver.Any(
				solver.SameValue(cur.x, prev.x),
				solver.SameValue(cur.y, prev.y),
			),
		); err != nil {
			return err
		}
	}

	for _, o := range g.Obstacles() {
		for t := range vars {
			if err := assertAll(d, solver.Any(
				solver.Ne(vars[t].x, o.X),
				solver.Ne(vars[t].y, o.Y),
			)); err != nil {
				return err
			}
		}
	}

	if variant == FixedEndpoint {
		dest := g.Destination()
		last := vars[len(vars)-1]
		if err := assertAll(d,
			solver.Eq(last.x, dest.X),
			solver.Eq(last.y, dest.Y),
		); err != nil {
			return err
		}
	}

	return nil
}

// assertAll posts each expression, wrapping the first failure.
func assertAll(d solver.Driver, es ...solver.BoolExpr) error {
	for _, e := range es {
		if err := d.Assert(e); err != nil {
			return fmt.Errorf("pathplan: assert constraint: %w", err)
		}
	}

	return nil
}
