package secant

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroot/core"
)

// DenominatorFloor is the smallest |f(x_k) − f(x_{k−1})| accepted.
const DenominatorFloor = 1e-18

// Problem binds a function and two seeds so it can be solved through core.Solver.
type Problem struct {
	F      core.Func
	X0, X1 float64
}

var _ core.Solver = Problem{}

// Solve runs Solve(p.F, p.X0, p.X1, opts...).
func (p Problem) Solve(opts ...core.Option) (core.Result, error) {
	return Solve(p.F, p.X0, p.X1, opts...)
}

// Solve runs the secant iteration from the distinct seeds x0 and x1.
//
// Stops when |x_{k+1} − x_k| < tolerance (or |f(x_{k+1})| < tolerance in
// residual mode), when f(x_{k+1}) == 0, or after the cap, in which case
// the last accepted iterate is returned with core.MaxIterations.
func Solve(f core.Func, x0, x1 float64, opts ...core.Option) (core.Result, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return core.Result{}, err
	}
	if f == nil {
		return core.Result{}, fmt.Errorf("%w: nil function", core.ErrInvalidInput)
	}
	if x0 == x1 {
		return core.Result{}, fmt.Errorf("%w: x0 and x1 must differ (%g)", core.ErrInvalidInput, x0)
	}
	for i, x := range [2]float64{x0, x1} {
		if !core.IsFinite(x) {
			return core.Result{}, core.NonFiniteIterate(core.Secant, i, x)
		}
		if !o.InDomain(x) {
			return core.Result{}, core.NewIterationError(core.Secant, i, x, core.ErrDomain)
		}
	}

	rec := o.NewRecorder()
	xPrev, xCurr := x0, x1
	fPrev, fCurr := f(xPrev), f(xCurr)
	if err = rec.Append(core.Record{Index: 0, X: xPrev, FX: fPrev}); err != nil {
		return core.Result{}, err
	}
	if err = rec.Append(core.Record{Index: 1, X: xCurr, FX: fCurr}); err != nil {
		return core.Result{}, err
	}

	for k := 1; k <= o.MaxIterations; k++ {
		denom := fCurr - fPrev
		if !core.IsFinite(denom) || math.Abs(denom) < DenominatorFloor {
			return core.Result{}, core.NewIterationError(core.Secant, k, xCurr,
				fmt.Errorf("%w: f(x_k)−f(x_{k−1}) = %g", core.ErrZeroDenominator, denom))
		}
		xNext := xCurr - fCurr*(xCurr-xPrev)/denom
		if !core.IsFinite(xNext) {
			return core.Result{}, core.NonFiniteIterate(core.Secant, k, xNext)
		}
		if !o.InDomain(xNext) {
			return core.Result{}, core.NewIterationError(core.Secant, k, xNext, core.ErrDomain)
		}
		fNext := f(xNext)
		if !core.IsFinite(fNext) {
			return core.Result{}, core.NewIterationError(core.Secant, k, xNext,
				fmt.Errorf("%w: f(x) = %g", core.ErrNonFinite, fNext))
		}
		step := math.Abs(xNext - xCurr)
		if err = rec.Append(core.Record{
			Index: k + 1, A: xPrev, FA: fPrev, B: xCurr, FB: fCurr,
			X: xNext, FX: fNext, Err: step,
		}); err != nil {
			return core.Result{}, err
		}
		if fNext == 0 {
			return rec.Result(core.Secant, xNext, k, core.ExactZero), nil
		}
		if reason, ok := core.Converged(o.StopMode, o.Tolerance, step, fNext); ok {
			return rec.Result(core.Secant, xNext, k, reason), nil
		}
		xPrev, fPrev = xCurr, fCurr
		xCurr, fCurr = xNext, fNext
	}

	return rec.Result(core.Secant, xCurr, o.MaxIterations, core.MaxIterations), nil
}
