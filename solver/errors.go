package solver

import "errors"

var (
	// ErrBadRange indicates DeclareInt was called with lo > hi.
	ErrBadRange = errors.New("solver: declared range is empty (lo > hi)")
	// ErrDuplicateKey indicates two unknowns were declared under one Key.
	ErrDuplicateKey = errors.New("solver: key already declared")
	// ErrForeignVar indicates an expression references a Var issued by a
	// different driver.
	ErrForeignVar = errors.New("solver: variable belongs to another driver")
	// ErrBadWeight indicates a non-positive objective term weight.
	ErrBadWeight = errors.New("solver: objective weights must be positive")
	// ErrClosed indicates the driver was already checked; drivers are
	// single-shot.
	ErrClosed = errors.New("solver: driver already checked")
	// ErrNoModel indicates a value lookup without a SAT model.
	ErrNoModel = errors.New("solver: no model available")
	// ErrNoValue indicates the model carries no assignment for the
	// requested key — a contract violation, not a normal outcome.
	ErrNoValue = errors.New("solver: model has no value for key")
	// ErrTimeout indicates the check exceeded its context deadline or was
	// cancelled before completing.
	ErrTimeout = errors.New("solver: check timed out")
)
