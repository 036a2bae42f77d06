// Package solver: gokanlogic-backed Driver.
//
// The backend records declarations and assertions, then materializes a
// minikanren.Model inside Check. Deferring the build matters: gokanlogic
// BitSetDomains only intersect when they share one capacity, so every
// variable, constant, and auxiliary sum in a model must be sized against a
// single maximum computed after the whole constraint system is known.
//
// Value mapping: gokanlogic domains range over 1..max, so a declared range
// [lo,hi] is stored as internal 1..hi−lo+1 and shifted back on lookup.
// Reified booleans follow the engine's {1,2} convention (1=false, 2=true);
// negation is b' = 3−b, conjunction and disjunction go through sum
// variables with EqualityReified / InSetReified on the sum.
package solver

import (
	"context"
	"errors"
	"fmt"

	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"
)

// kanrenVar is the handle issued by Kanren for a declared unknown.
// fd is populated when Check materializes the model.
type kanrenVar struct {
	key    Key
	owner  *Kanren
	lo, hi int
	fd     *mk.FDVariable
}

// Key implements Var.
func (v *kanrenVar) Key() Key { return v.key }

// span is the internal domain size of the unknown.
func (v *kanrenVar) span() int { return v.hi - v.lo + 1 }

// Kanren is a single-shot Driver backed by gokanlogic's finite-domain
// solver. Not safe for concurrent use.
type Kanren struct {
	decls    []*kanrenVar
	vars     map[Key]*kanrenVar
	asserts  []BoolExpr
	terms    []Term
	hasObj   bool
	checked  bool
	result   Result
	sol      []int
	objVal   int
	objOff   int
	objFD    *mk.FDVariable
	infeasib bool

	// populated by Check
	model  *mk.Model
	cap    int
	consts map[int]*mk.FDVariable
}

var _ Driver = (*Kanren)(nil)

// NewKanren returns an empty single-shot driver.
func NewKanren() *Kanren {
	return &Kanren{vars: make(map[Key]*kanrenVar)}
}

// DeclareInt implements Driver.
func (d *Kanren) DeclareInt(k Key, lo, hi int) (Var, error) {
	if d.checked {
		return nil, ErrClosed
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: %s over [%d,%d]", ErrBadRange, k, lo, hi)
	}
	if _, dup := d.vars[k]; dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, k)
	}
	v := &kanrenVar{key: k, owner: d, lo: lo, hi: hi}
	d.vars[k] = v
	d.decls = append(d.decls, v)

	return v, nil
}

// Assert implements Driver. Expressions are compiled during Check.
func (d *Kanren) Assert(e BoolExpr) error {
	if d.checked {
		return ErrClosed
	}
	if e == nil {
		return errors.New("solver: nil expression")
	}
	d.asserts = append(d.asserts, e)

	return nil
}

// Maximize implements Driver.
func (d *Kanren) Maximize(terms []Term) error {
	if d.checked {
		return ErrClosed
	}
	if d.hasObj {
		return errors.New("solver: objective already set")
	}
	for _, t := range terms {
		if t.Weight < 1 {
			return fmt.Errorf("%w: got %d", ErrBadWeight, t.Weight)
		}
		if t.Cond == nil {
			return errors.New("solver: nil objective condition")
		}
	}
	d.terms = terms
	d.hasObj = len(terms) > 0

	return nil
}

// Check implements Driver: sizes the model, materializes variables and
// constraints, and runs the engine exactly once.
func (d *Kanren) Check(ctx context.Context) (Result, error) {
	if d.checked {
		return Unknown, ErrClosed
	}
	d.checked = true

	// Sizing pass: one capacity covers every internal value the
	// compilation below can produce.
	size := 2
	for _, v := range d.decls {
		size = maxInt(size, v.span())
	}
	for _, e := range d.asserts {
		size = maxInt(size, d.need(e))
	}
	if d.hasObj {
		sum := 0
		for _, t := range d.terms {
			size = maxInt(size, d.need(t.Cond))
			sum += t.Weight
		}
		size = maxInt(size, 2*sum)
	}
	d.cap = size
	d.model = mk.NewModel()
	d.consts = make(map[int]*mk.FDVariable)

	// Declared unknowns first, in declaration order, so variable IDs stay
	// deterministic across runs.
	for _, v := range d.decls {
		v.fd = d.model.NewVariableWithName(d.rangeDomain(1, v.span()), v.key.String())
	}
	for _, e := range d.asserts {
		if err := d.assertExpr(e); err != nil {
			return Unknown, err
		}
	}
	if d.hasObj && !d.infeasib {
		if err := d.buildObjective(); err != nil {
			return Unknown, err
		}
	}
	if d.infeasib {
		// A constraint was impossible on its face (e.g. a pin outside the
		// declared range); no search needed.
		d.result = Unsat
		return Unsat, nil
	}

	eng := mk.NewSolver(d.model)
	if d.objFD != nil {
		sol, val, err := eng.SolveOptimal(ctx, d.objFD, false)
		if err != nil {
			return Unknown, classifyCheckErr(err)
		}
		if sol == nil {
			d.result = Unsat
			return Unsat, nil
		}
		d.sol = sol
		d.objVal = val - d.objOff
		d.result = Sat

		return Sat, nil
	}

	sols, err := eng.Solve(ctx, 1)
	if len(sols) > 0 {
		d.sol = sols[0]
		d.result = Sat
		return Sat, nil
	}
	if err != nil {
		return Unknown, classifyCheckErr(err)
	}
	d.result = Unsat

	return Unsat, nil
}

// Value implements Driver.
func (d *Kanren) Value(k Key) (int, error) {
	if d.result != Sat {
		return 0, ErrNoModel
	}
	v, ok := d.vars[k]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoValue, k)
	}
	id := v.fd.ID()
	if id < 0 || id >= len(d.sol) {
		return 0, fmt.Errorf("%w: %s", ErrNoValue, k)
	}
	raw := d.sol[id]
	if raw < 1 || raw > v.span() {
		return 0, fmt.Errorf("%w: %s", ErrNoValue, k)
	}

	return raw + v.lo - 1, nil
}

// Objective implements Driver.
func (d *Kanren) Objective() (int, bool) {
	if d.result != Sat || d.objFD == nil {
		return 0, false
	}

	return d.objVal, true
}

// classifyCheckErr separates deadline/cancellation from engine failures.
func classifyCheckErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("solver: check failed: %w", err)
}

// need returns the largest internal value compiling e can introduce,
// mirroring the compilation cases below.
func (d *Kanren) need(e BoolExpr) int {
	switch x := e.(type) {
	case eqConst:
		if v, ok := x.v.(*kanrenVar); ok {
			return v.span()
		}
	case neConst:
		if v, ok := x.v.(*kanrenVar); ok {
			return maxInt(v.span(), 3)
		}
	case sameValue:
		a, okA := x.a.(*kanrenVar)
		b, okB := x.b.(*kanrenVar)
		if okA && okB {
			return maxInt(a.hi, b.hi) - minInt(a.lo, b.lo) + 1
		}
	case withinOne:
		a, okA := x.a.(*kanrenVar)
		b, okB := x.b.(*kanrenVar)
		if okA && okB {
			return a.span() + b.span() - 1
		}
	case conj:
		n := 2 * len(x.es)
		for _, c := range x.es {
			n = maxInt(n, d.need(c))
		}
		return n
	case disj:
		n := 2 * len(x.es)
		for _, c := range x.es {
			n = maxInt(n, d.need(c))
		}
		return n
	}

	return 2
}

// ---------------------------------------------------------------------------
// Compilation
// ---------------------------------------------------------------------------

// fdOf resolves a handle back to its backend variable.
func (d *Kanren) fdOf(v Var) (*kanrenVar, error) {
	if v == nil {
		return nil, errors.New("solver: nil variable")
	}
	kv, ok := v.(*kanrenVar)
	if !ok || kv.owner != d {
		return nil, ErrForeignVar
	}

	return kv, nil
}

// rangeDomain builds a domain holding lo..hi at the model capacity.
func (d *Kanren) rangeDomain(lo, hi int) *mk.BitSetDomain {
	vals := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		vals = append(vals, v)
	}

	return mk.NewBitSetDomainFromValues(d.cap, vals)
}

// valuesDomain builds a domain holding exactly vals at the model capacity.
func (d *Kanren) valuesDomain(vals []int) *mk.BitSetDomain {
	return mk.NewBitSetDomainFromValues(d.cap, vals)
}

// constFD returns a shared singleton variable for the internal value c.
func (d *Kanren) constFD(c int) *mk.FDVariable {
	if fd, ok := d.consts[c]; ok {
		return fd
	}
	fd := d.model.NewVariable(d.valuesDomain([]int{c}))
	d.consts[c] = fd

	return fd
}

// boolFD returns a fresh {1,2} variable.
func (d *Kanren) boolFD() *mk.FDVariable {
	return d.model.NewVariable(d.rangeDomain(1, 2))
}

// add posts a constraint, converting constructor errors (nil arguments,
// empty sets) into build failures.
func (d *Kanren) add(c mk.ModelConstraint, err error) error {
	if err != nil {
		return fmt.Errorf("solver: build constraint: %w", err)
	}
	d.model.AddConstraint(c)

	return nil
}

// shiftFD returns a variable equal to v's value rebased so that the
// external value base maps to internal 1. Needed when two unknowns with
// different lower bounds meet in one equality.
func (d *Kanren) shiftFD(v *kanrenVar, base int) (*mk.FDVariable, error) {
	off := v.lo - base
	if off == 0 {
		return v.fd, nil
	}
	w := d.model.NewVariable(d.rangeDomain(1+off, v.span()+off))
	// w − v = off
	ls, err := mk.NewLinearSum([]*mk.FDVariable{w, v.fd}, []int{1, -1}, d.constFD(off))
	if err2 := d.add(ls, err); err2 != nil {
		return nil, err2
	}

	return w, nil
}

// stepFD introduces s over dom with s = (a − b) + Z in external values,
// where Z = stepGeometry's zero point. Substituting the internal encoding
// gives the channel s − a + b = b.span(), which is always ≥ 1 and so fits
// a constant variable.
func (d *Kanren) stepFD(a, b *kanrenVar, dom *mk.BitSetDomain) (*mk.FDVariable, error) {
	s := d.model.NewVariable(dom)
	ls, err := mk.NewLinearSum(
		[]*mk.FDVariable{s, a.fd, b.fd},
		[]int{1, -1, 1},
		d.constFD(b.span()),
	)
	if err2 := d.add(ls, err); err2 != nil {
		return nil, err2
	}

	return s, nil
}

// stepGeometry computes the internal zero point and range for a−b.
func stepGeometry(a, b *kanrenVar) (z, smax int) {
	z = b.hi - a.lo + 1
	smax = a.span() + b.span() - 1

	return z, smax
}

// clipRange returns lo..hi intersected with [1, max].
func clipRange(lo, hi, max int) []int {
	var vals []int
	for v := maxInt(lo, 1); v <= minInt(hi, max); v++ {
		vals = append(vals, v)
	}

	return vals
}

// assertExpr compiles e as a hard requirement.
func (d *Kanren) assertExpr(e BoolExpr) error {
	switch x := e.(type) {
	case eqConst:
		v, err := d.fdOf(x.v)
		if err != nil {
			return err
		}
		if x.c < v.lo || x.c > v.hi {
			d.infeasib = true
			return nil
		}
		return d.add(mk.NewEqualityReified(v.fd, d.constFD(x.c-v.lo+1), d.constFD(2)))

	case neConst:
		v, err := d.fdOf(x.v)
		if err != nil {
			return err
		}
		if x.c < v.lo || x.c > v.hi {
			return nil // trivially true
		}
		return d.add(mk.NewEqualityReified(v.fd, d.constFD(x.c-v.lo+1), d.constFD(1)))

	case sameValue:
		a, b, err := d.pair(x.a, x.b)
		if err != nil {
			return err
		}
		fa, fb, err := d.aligned(a, b)
		if err != nil {
			return err
		}
		return d.add(mk.NewEqualityReified(fa, fb, d.constFD(2)))

	case withinOne:
		a, b, err := d.pair(x.a, x.b)
		if err != nil {
			return err
		}
		z, smax := stepGeometry(a, b)
		allowed := clipRange(z-1, z+1, smax)
		if len(allowed) == 0 {
			d.infeasib = true
			return nil
		}
		_, err = d.stepFD(a, b, d.valuesDomain(allowed))
		return err

	case conj:
		for _, c := range x.es {
			if err := d.assertExpr(c); err != nil {
				return err
			}
		}
		return nil

	case disj:
		switch len(x.es) {
		case 0:
			d.infeasib = true
			return nil
		case 1:
			return d.assertExpr(x.es[0])
		}
		bs := make([]*mk.FDVariable, len(x.es))
		for i, c := range x.es {
			b, err := d.reify(c)
			if err != nil {
				return err
			}
			bs[i] = b
		}
		n := len(bs)
		// Σ bᵢ over {1,2} booleans; at least one true ⇔ sum ≥ n+1.
		sum := d.model.NewVariable(d.rangeDomain(n+1, 2*n))
		return d.add(mk.NewLinearSum(bs, ones(n), sum))
	}

	return fmt.Errorf("solver: unsupported expression %T", e)
}

// reify compiles e into a {1,2} truth variable.
func (d *Kanren) reify(e BoolExpr) (*mk.FDVariable, error) {
	switch x := e.(type) {
	case eqConst:
		v, err := d.fdOf(x.v)
		if err != nil {
			return nil, err
		}
		if x.c < v.lo || x.c > v.hi {
			return d.constFD(1), nil
		}
		b := d.boolFD()
		if err := d.add(mk.NewEqualityReified(v.fd, d.constFD(x.c-v.lo+1), b)); err != nil {
			return nil, err
		}
		return b, nil

	case neConst:
		v, err := d.fdOf(x.v)
		if err != nil {
			return nil, err
		}
		if x.c < v.lo || x.c > v.hi {
			return d.constFD(2), nil
		}
		beq := d.boolFD()
		if err := d.add(mk.NewEqualityReified(v.fd, d.constFD(x.c-v.lo+1), beq)); err != nil {
			return nil, err
		}
		return d.negate(beq)

	case sameValue:
		a, b, err := d.pair(x.a, x.b)
		if err != nil {
			return nil, err
		}
		fa, fb, err := d.aligned(a, b)
		if err != nil {
			return nil, err
		}
		bv := d.boolFD()
		if err := d.add(mk.NewEqualityReified(fa, fb, bv)); err != nil {
			return nil, err
		}
		return bv, nil

	case withinOne:
		a, b, err := d.pair(x.a, x.b)
		if err != nil {
			return nil, err
		}
		z, smax := stepGeometry(a, b)
		allowed := clipRange(z-1, z+1, smax)
		if len(allowed) == 0 {
			return d.constFD(1), nil
		}
		s, err := d.stepFD(a, b, d.rangeDomain(1, smax))
		if err != nil {
			return nil, err
		}
		bv := d.boolFD()
		if err := d.add(mk.NewInSetReified(s, allowed, bv)); err != nil {
			return nil, err
		}
		return bv, nil

	case conj:
		switch len(x.es) {
		case 0:
			return d.constFD(2), nil
		case 1:
			return d.reify(x.es[0])
		}
		bs := make([]*mk.FDVariable, len(x.es))
		for i, c := range x.es {
			b, err := d.reify(c)
			if err != nil {
				return nil, err
			}
			bs[i] = b
		}
		n := len(bs)
		sum := d.model.NewVariable(d.rangeDomain(n, 2*n))
		if err := d.add(mk.NewLinearSum(bs, ones(n), sum)); err != nil {
			return nil, err
		}
		bv := d.boolFD()
		// all true ⇔ sum = 2n
		if err := d.add(mk.NewEqualityReified(sum, d.constFD(2*n), bv)); err != nil {
			return nil, err
		}
		return bv, nil

	case disj:
		switch len(x.es) {
		case 0:
			return d.constFD(1), nil
		case 1:
			return d.reify(x.es[0])
		}
		bs := make([]*mk.FDVariable, len(x.es))
		for i, c := range x.es {
			b, err := d.reify(c)
			if err != nil {
				return nil, err
			}
			bs[i] = b
		}
		n := len(bs)
		sum := d.model.NewVariable(d.rangeDomain(n, 2*n))
		if err := d.add(mk.NewLinearSum(bs, ones(n), sum)); err != nil {
			return nil, err
		}
		bv := d.boolFD()
		if err := d.add(mk.NewInSetReified(sum, seq(n+1, 2*n), bv)); err != nil {
			return nil, err
		}
		return bv, nil
	}

	return nil, fmt.Errorf("solver: unsupported expression %T", e)
}

// negate returns b' = 3 − b.
func (d *Kanren) negate(b *mk.FDVariable) (*mk.FDVariable, error) {
	nb := d.boolFD()
	if err := d.add(mk.NewLinearSum([]*mk.FDVariable{b, nb}, []int{1, 1}, d.constFD(3))); err != nil {
		return nil, err
	}

	return nb, nil
}

// buildObjective reifies every term condition and channels the weighted
// sum into the objective variable.
func (d *Kanren) buildObjective() error {
	n := len(d.terms)
	bs := make([]*mk.FDVariable, n)
	ws := make([]int, n)
	sum := 0
	for i, t := range d.terms {
		b, err := d.reify(t.Cond)
		if err != nil {
			return err
		}
		bs[i] = b
		ws[i] = t.Weight
		sum += t.Weight
	}
	d.objFD = d.model.NewVariable(d.rangeDomain(sum, 2*sum))
	d.objOff = sum

	return d.add(mk.NewLinearSum(bs, ws, d.objFD))
}

// pair resolves two handles at once.
func (d *Kanren) pair(a, b Var) (*kanrenVar, *kanrenVar, error) {
	ka, err := d.fdOf(a)
	if err != nil {
		return nil, nil, err
	}
	kb, err := d.fdOf(b)
	if err != nil {
		return nil, nil, err
	}

	return ka, kb, nil
}

// aligned rebases both unknowns to a shared lower bound so internal
// equality coincides with external equality.
func (d *Kanren) aligned(a, b *kanrenVar) (*mk.FDVariable, *mk.FDVariable, error) {
	base := minInt(a.lo, b.lo)
	fa, err := d.shiftFD(a, base)
	if err != nil {
		return nil, nil, err
	}
	fb, err := d.shiftFD(b, base)
	if err != nil {
		return nil, nil, err
	}

	return fa, fb, nil
}

func ones(n int) []int {
	c := make([]int, n)
	for i := range c {
		c[i] = 1
	}

	return c
}

func seq(lo, hi int) []int {
	vals := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		vals = append(vals, v)
	}

	return vals
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
