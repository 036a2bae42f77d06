// Package pathplan defines options, variants, and result types for the
// pathplan subpackage of github.com/katalvlaran/gridpath.
package pathplan

import (
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/solver"
)

// Variant selects the boundary-condition encoding.
type Variant int

const (
	// DestinationBonus pins only timestep 0 to the start and maximizes the
	// weighted count of timesteps spent on the destination. Feasible for
	// every horizon T ≥ 1: staying at the start satisfies all constraints.
	DestinationBonus Variant = iota

	// FixedEndpoint pins timestep 0 to the start and timestep T−1 to the
	// destination. Infeasible when no path fits the horizon.
	FixedEndpoint
)

// String returns a short variant name.
func (v Variant) String() string {
	if v == FixedEndpoint {
		return "fixed-endpoint"
	}

	return "destination-bonus"
}

// Options configures a solve.
//
//   - Variant            — boundary-condition encoding (default DestinationBonus).
//   - DestinationWeight  — score contributed by each destination-coincident
//     timestep in the bonus variant; must be ≥ 1 (default 1).
//   - Timeout            — upper bound on solver time; 0 means none.
//   - SkipPrecheck       — disable the BFS feasibility precheck and let the
//     solver prove infeasibility itself (fixed-endpoint variant only).
//   - NewDriver          — backend factory; nil means solver.NewKanren.
type Options struct {
	Variant           Variant
	DestinationWeight int
	Timeout           time.Duration
	SkipPrecheck      bool
	NewDriver         func() solver.Driver
}

// DefaultOptions returns Options with default settings: DestinationBonus,
// weight 1, no timeout, precheck enabled, gokanlogic backend.
func DefaultOptions() Options {
	return Options{
		Variant:           DestinationBonus,
		DestinationWeight: 1,
	}
}

// Path is an ordered sequence of concrete positions, one per timestep.
// Produced only on success; never partially populated.
type Path []grid.Position

// Result is a successful solve: the decoded path and, in the bonus
// variant, the achieved score (weight × destination-coincident timesteps).
type Result struct {
	Path  Path
	Score int
}
