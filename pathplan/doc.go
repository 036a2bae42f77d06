// Package pathplan encodes bounded-horizon grid pathfinding over a
// solver.Driver and decodes the resulting model into a typed path.
//
// What:
//
//   - One symbolic position (two integer unknowns) per timestep t ∈ [0,T),
//     keyed by structured solver.Key — decoding inverts keys, never names.
//   - Constraints: bounds via declared ranges, Manhattan adjacency ≤ 1
//     between consecutive timesteps (waiting allowed), a per-cell
//     disjunctive exclusion for every obstacle, and variant-specific pins.
//   - Two variants: DestinationBonus pins only t=0 and maximizes the
//     weighted count of destination-coincident timesteps (feasible for any
//     T ≥ 1); FixedEndpoint also pins t=T−1 and may be infeasible.
//   - Solve: build → check → decode, one blocking call, fresh variable
//     namespace every time.
//
// Why:
//
//   - The encode/decode layer is the correctness-critical part of
//     solver-based pathfinding: every model must decode to a valid path,
//     and no valid path may be excluded.
//   - The parking behavior of the bonus variant (lingering at the
//     destination once reached) is deliberate: zero-displacement steps are
//     legal, so arriving early and waiting accumulates score.
//
// Complexity:
//
//   - Encoding: O(T·(1+|obstacles|)) constraints, O(T) variables.
//   - Solving: delegated; unbounded in general. Options.Timeout bounds the
//     wait, and a BFS precheck rejects hopeless fixed-endpoint horizons in
//     O(W×H) before any solver work.
//
// Errors:
//
//   - ErrHorizon: non-positive horizon.
//   - ErrWeight: non-positive destination weight in the bonus variant.
//   - ErrInfeasibleHorizon: fixed-endpoint variant has no path within T.
//   - ErrSolveTimeout: the solver exceeded the configured deadline.
//   - ErrSolverContract: SAT reported but a value was missing — an
//     internal defect, never masked.
package pathplan
