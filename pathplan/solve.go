package pathplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/solver"
)

// Solve plans a path of exactly horizon timesteps across g.
//
// The call is synchronous and blocking: it builds a fresh constraint
// system, hands it to the driver, and decodes the model on success.
// Nothing is shared or reused between solves. Solve either returns a
// fully valid path or no path at all.
//
// In the FixedEndpoint variant an exact BFS precheck rejects hopeless
// horizons in O(W×H) before any solver work: waiting in place is legal,
// so the variant is feasible iff the BFS distance from start to
// destination is at most horizon−1. Options.SkipPrecheck routes such
// instances through the solver instead, which then proves UNSAT itself.
//
// Complexity: encoding O(T·(1+|obstacles|)); solving delegated and
// unbounded unless Options.Timeout is set.
func Solve(ctx context.Context, g *grid.Grid, horizon int, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if horizon < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrHorizon, horizon)
	}
	if opts.Variant == DestinationBonus && opts.DestinationWeight < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrWeight, opts.DestinationWeight)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	if opts.Variant == FixedEndpoint && !opts.SkipPrecheck {
		steps, reachable := g.MinSteps()
		if !reachable {
			return Result{}, fmt.Errorf("%w: destination unreachable", ErrInfeasibleHorizon)
		}
		if steps > horizon-1 {
			return Result{}, fmt.Errorf("%w: need at least %d timesteps, got %d",
				ErrInfeasibleHorizon, steps+1, horizon)
		}
	}

	newDriver := opts.NewDriver
	if newDriver == nil {
		newDriver = func() solver.Driver { return solver.NewKanren() }
	}
	d := newDriver()

	vars, err := declareVariables(d, g, horizon)
	if err != nil {
		return Result{}, err
	}
	if err = buildConstraints(d, g, vars, opts.Variant); err != nil {
		return Result{}, err
	}
	if opts.Variant == DestinationBonus {
		if err = buildObjective(d, g, vars, opts.DestinationWeight); err != nil {
			return Result{}, err
		}
	}

	res, err := d.Check(ctx)
	if err != nil {
		if errors.Is(err, solver.ErrTimeout) {
			return Result{}, fmt.Errorf("%w: %v", ErrSolveTimeout, err)
		}
		return Result{}, fmt.Errorf("pathplan: %w", err)
	}
	if res == solver.Unsat {
		if opts.Variant == FixedEndpoint {
			return Result{}, fmt.Errorf("%w: horizon %d", ErrInfeasibleHorizon, horizon)
		}
		// The bonus encoding is satisfiable by construction (staying at
		// the start is always a model), so UNSAT here is a defect.
		return Result{}, fmt.Errorf("%w: unsat on a feasible-by-construction encoding", ErrSolverContract)
	}

	path, err := decodePath(d, horizon)
	if err != nil {
		return Result{}, err
	}

	out := Result{Path: path}
	if opts.Variant == DestinationBonus {
		out.Score = scoreOf(path, g.Destination(), opts.DestinationWeight)
	}

	return out, nil
}
