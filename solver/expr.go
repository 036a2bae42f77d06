package solver

// BoolExpr is a boolean condition over declared unknowns. The language is
// deliberately small: equality atoms against constants or other unknowns,
// a unit-distance atom, and conjunction/disjunction. Drivers compile it to
// whatever their engine understands.
type BoolExpr interface {
	isBoolExpr()
}

type eqConst struct {
	v Var
	c int
}

type neConst struct {
	v Var
	c int
}

type sameValue struct {
	a, b Var
}

type withinOne struct {
	a, b Var
}

type conj struct {
	es []BoolExpr
}

type disj struct {
	es []BoolExpr
}

func (eqConst) isBoolExpr()   {}
func (neConst) isBoolExpr()   {}
func (sameValue) isBoolExpr() {}
func (withinOne) isBoolExpr() {}
func (conj) isBoolExpr()      {}
func (disj) isBoolExpr()      {}

// Eq holds when v equals the constant c.
func Eq(v Var, c int) BoolExpr {
	return eqConst{v: v, c: c}
}

// Ne holds when v differs from the constant c.
func Ne(v Var, c int) BoolExpr {
	return neConst{v: v, c: c}
}

// SameValue holds when a and b take the same value.
func SameValue(a, b Var) BoolExpr {
	return sameValue{a: a, b: b}
}

// WithinOne holds when |a − b| ≤ 1.
func WithinOne(a, b Var) BoolExpr {
	return withinOne{a: a, b: b}
}

// All holds when every sub-condition holds. All() with no arguments is
// trivially true.
func All(es ...BoolExpr) BoolExpr {
	return conj{es: es}
}

// Any holds when at least one sub-condition holds. Any() with no arguments
// is trivially false.
func Any(es ...BoolExpr) BoolExpr {
	return disj{es: es}
}
