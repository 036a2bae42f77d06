// Package solver defines the narrow boundary between a path encoding and
// an external constraint engine, plus a gokanlogic-backed implementation.
//
// What:
//
//   - Key — structured variable identity (timestep, component); no string
//     parsing anywhere in the lookup path.
//   - Driver — the external-capability contract: declare bounded integer
//     unknowns, assert boolean expressions over them, optionally maximize a
//     weighted sum of condition indicators, check satisfiability, and read
//     values back by Key after a SAT result.
//   - BoolExpr — a small typed condition language: Eq, Ne, SameValue,
//     WithinOne atoms combined with All and Any.
//   - Kanren — a Driver that compiles the condition language onto
//     github.com/gitrdm/gokanlogic's finite-domain Model/Solver.
//
// Why:
//
//   - Encoders never touch solver internals; swapping the engine means
//     implementing Driver, nothing more.
//   - Value lookup by structured Key is a correctness requirement: solver
//     iteration order is unspecified and must never drive decoding.
//
// Semantics:
//
//   - A Driver instance is single-shot: build, Check once, read values.
//   - Check returns Sat or Unsat; context expiry yields ErrTimeout,
//     distinguishable from genuine infeasibility.
//   - Value is valid only after Sat; unknown keys or missing assignments
//     yield ErrNoValue (a contract violation for the caller to escalate).
//
// Errors:
//
//   - ErrBadRange, ErrDuplicateKey, ErrForeignVar, ErrBadWeight: misuse
//     detected while building.
//   - ErrClosed: the driver was already checked.
//   - ErrNoModel, ErrNoValue: value lookups without/outside a SAT model.
//   - ErrTimeout: the check exceeded its context deadline.
package solver
