// Package core: sentinel error set shared by every solver.
// All solvers MUST return (or wrap) these sentinels and tests MUST check them
// via errors.Is. No solver panics on user-triggered conditions.

package core

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "core: ...". Step-level faults are wrapped in
// *IterationError so the offending value and step are named; errors.Is still
// matches the sentinel through Unwrap.
var (
	// ErrInvalidInput indicates malformed initial inputs or option values
	// (x0 == x1, a == b, nil function, non-positive tolerance, ...).
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrBracket indicates that no sign change was supplied or discoverable
	// for a bisection bracket.
	ErrBracket = errors.New("core: bracket has no sign change")

	// ErrSignCondition indicates f(a) and f(b) do not have opposite signs
	// for a regula falsi bracket.
	ErrSignCondition = errors.New("core: f(a) and f(b) must have opposite signs")

	// ErrZeroDerivative indicates |f'(x)| fell below the Newton floor.
	// Callers should retry from a different starting point.
	ErrZeroDerivative = errors.New("core: derivative below numeric floor")

	// ErrZeroDenominator indicates the secant denominator f(x_k) − f(x_{k−1})
	// fell below the numeric floor or was not finite.
	ErrZeroDenominator = errors.New("core: secant denominator below floor or not finite")

	// ErrDomain indicates an iterate or evaluation point lies outside the
	// caller's declared domain.
	ErrDomain = errors.New("core: point outside function domain")

	// ErrNonFinite indicates an iterate or function value is NaN or ±Inf.
	ErrNonFinite = errors.New("core: NaN or Inf encountered")
)

// errNonFiniteIterate is used by the unbracketed methods: a NaN/±Inf iterate
// is both non-finite and outside every real domain, so it matches both.
var errNonFiniteIterate = fmt.Errorf("%w: %w", ErrNonFinite, ErrDomain)

// IterationError names the step and value at which a solve failed.
type IterationError struct {
	Method Method
	Step   int
	X      float64
	Err    error
}

// NewIterationError builds an *IterationError for method m at step with value x.
func NewIterationError(m Method, step int, x float64, err error) *IterationError {
	return &IterationError{Method: m, Step: step, X: x, Err: err}
}

// NonFiniteIterate returns the error reported when an unbracketed method
// produces a NaN/±Inf iterate. It matches both ErrNonFinite and ErrDomain.
func NonFiniteIterate(m Method, step int, x float64) *IterationError {
	return NewIterationError(m, step, x, errNonFiniteIterate)
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("%s: step %d: x=%.17g: %v", e.Method, e.Step, e.X, e.Err)
}

func (e *IterationError) Unwrap() error { return e.Err }
