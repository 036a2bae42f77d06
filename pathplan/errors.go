package pathplan

import "errors"

var (
	// ErrNilGrid indicates Solve was called without a grid.
	ErrNilGrid = errors.New("pathplan: grid must not be nil")
	// ErrHorizon indicates a non-positive horizon.
	ErrHorizon = errors.New("pathplan: horizon must be a positive integer")
	// ErrWeight indicates a non-positive destination weight.
	ErrWeight = errors.New("pathplan: destination weight must be positive")
	// ErrInfeasibleHorizon indicates the fixed-endpoint variant admits no
	// path within the horizon. Retrying with a larger horizon is caller
	// policy, never automatic.
	ErrInfeasibleHorizon = errors.New("pathplan: no path reaches the destination within the horizon")
	// ErrSolveTimeout indicates the solver exceeded the configured
	// deadline; distinct from genuine infeasibility.
	ErrSolveTimeout = errors.New("pathplan: solve timed out")
	// ErrSolverContract indicates the solver reported SAT but the model
	// was unusable (a missing value, or an impossible UNSAT). This is an
	// internal defect, always fatal, never masked.
	ErrSolverContract = errors.New("pathplan: solver contract violation")
)
