// Package gridpath encodes bounded-horizon grid pathfinding as a finite
// domain constraint model, hands the model to an external solver, and
// decodes the satisfying assignment back into a typed path.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• grid     — immutable occupancy grids: bounds, obstacles, BFS reachability
//		• solver   — a narrow, typed constraint-builder boundary with a
//		             gokanlogic (CP) backend; swappable for other engines
//		• pathplan — per-timestep position variables, adjacency/obstacle
//		             constraints, optional destination-bonus objective,
//		             and deterministic structured-key decoding
//
// ✨ Why choose gridpath?
//
//   - Correct by construction – every satisfying assignment is a valid path;
//     decoding looks values up by structured key, never by iteration order
//   - Two encodings – fixed-endpoint feasibility, or destination-bonus
//     maximization where the path may arrive early and wait
//   - Honest failures – typed infeasibility, timeout, and contract errors;
//     never a partial or best-effort path
//
// Quick ASCII example (3×3, obstacles marked #, horizon 5):
//
//	S # .        S = start (0,0)
//	. . .        D = destination (2,2)
//	. # D        one optimal path: (0,0)(0,1)(1,1)(2,1)(2,2)
//
// The same solver boundary also fits other horizon-indexed toy problems
// (e.g. resource-accumulation optimal stopping); those live outside this
// module. Dive into examples/ for runnable walkthroughs of both variants.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
