// Package solver defines core types and the Driver contract for the
// solver subpackage of github.com/katalvlaran/gridpath.
package solver

import (
	"context"
	"fmt"
)

// Component tags which coordinate of a timestep position a variable holds.
type Component uint8

const (
	// CompX is the horizontal coordinate of a position variable.
	CompX Component = iota
	// CompY is the vertical coordinate of a position variable.
	CompY
)

// String returns "x" or "y".
func (c Component) String() string {
	if c == CompX {
		return "x"
	}

	return "y"
}

// Key identifies one declared integer unknown by timestep and component.
// Keys are compared by value; no two distinct unknowns may share a Key.
// The string form exists for diagnostics only — decoding inverts the Key
// itself, never a rendered name.
type Key struct {
	Step int
	Comp Component
}

// String renders the key as "x[t]" or "y[t]".
func (k Key) String() string {
	return fmt.Sprintf("%s[%d]", k.Comp, k.Step)
}

// Var is an opaque handle to a declared integer unknown. Handles are only
// meaningful to the Driver that issued them.
type Var interface {
	// Key returns the structured identity this unknown was declared under.
	Key() Key
}

// Result reports the outcome of a satisfiability check.
type Result int

const (
	// Unknown means Check has not completed.
	Unknown Result = iota
	// Sat means a model exists; Value lookups are now valid.
	Sat
	// Unsat means the constraint system has no solution.
	Unsat
)

// String returns a short human-readable result name.
func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Term is one weighted indicator in a maximization objective: it
// contributes Weight when Cond holds in the model and 0 otherwise.
// Weight must be positive.
type Term struct {
	Weight int
	Cond   BoolExpr
}

// Driver is the external-capability boundary to a constraint engine.
//
// A Driver is single-shot and not safe for concurrent use: declare and
// assert, call Check exactly once, then read values. Implementations must
// resolve Value by Key, never by any internal iteration order.
type Driver interface {
	// DeclareInt declares an integer unknown ranging over [lo, hi]
	// (inclusive) under the given Key.
	DeclareInt(k Key, lo, hi int) (Var, error)

	// Assert requires the condition to hold in every model.
	Assert(e BoolExpr) error

	// Maximize installs an objective: the weighted count of satisfied
	// term conditions. May be called at most once.
	Maximize(terms []Term) error

	// Check performs the blocking solve. Context expiry is reported as
	// ErrTimeout, distinct from an Unsat result.
	Check(ctx context.Context) (Result, error)

	// Value returns the assigned value of the unknown declared under k.
	// Valid only after Check returned Sat.
	Value(k Key) (int, error)

	// Objective returns the achieved objective value after a Sat check
	// with an installed objective; ok is false otherwise.
	Objective() (val int, ok bool)
}
