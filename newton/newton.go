package newton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroot/core"
)

// DerivativeFloor is the smallest |f'(x)| accepted before an update.
const DerivativeFloor = 1e-14

// Problem binds f, its derivative and a starting point for core.Solver.
type Problem struct {
	F, DF core.Func
	X0    float64
}

var _ core.Solver = Problem{}

// Solve runs Solve(p.F, p.DF, p.X0, opts...).
func (p Problem) Solve(opts ...core.Option) (core.Result, error) {
	return Solve(p.F, p.DF, p.X0, opts...)
}

// Solve runs Newton–Raphson from x0.
//
// Record n holds x_n (A), f(x_n) (FA), f'(x_n) (DF), x_{n+1} (X),
// f(x_{n+1}) (FX) and |x_{n+1} − x_n| (Err). Each f value is computed once
// and carried to the next step.
func Solve(f, df core.Func, x0 float64, opts ...core.Option) (core.Result, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return core.Result{}, err
	}
	if f == nil || df == nil {
		return core.Result{}, fmt.Errorf("%w: nil function or derivative", core.ErrInvalidInput)
	}
	if !core.IsFinite(x0) {
		return core.Result{}, core.NonFiniteIterate(core.Newton, 0, x0)
	}
	if !o.InDomain(x0) {
		return core.Result{}, core.NewIterationError(core.Newton, 0, x0, core.ErrDomain)
	}

	rec := o.NewRecorder()
	x, fx := x0, f(x0)
	if !core.IsFinite(fx) {
		return core.Result{}, core.NewIterationError(core.Newton, 0, x,
			fmt.Errorf("%w: f(x) = %g", core.ErrNonFinite, fx))
	}
	for n := 1; n <= o.MaxIterations; n++ {
		dfx := df(x)
		if !core.IsFinite(dfx) {
			return core.Result{}, core.NewIterationError(core.Newton, n, x,
				fmt.Errorf("%w: f'(x) = %g", core.ErrNonFinite, dfx))
		}
		if math.Abs(dfx) < DerivativeFloor {
			return core.Result{}, core.NewIterationError(core.Newton, n, x,
				fmt.Errorf("%w: |f'(x)| = %g; try another x0", core.ErrZeroDerivative, math.Abs(dfx)))
		}
		xNext := x - fx/dfx
		if !core.IsFinite(xNext) {
			return core.Result{}, core.NonFiniteIterate(core.Newton, n, xNext)
		}
		if !o.InDomain(xNext) {
			return core.Result{}, core.NewIterationError(core.Newton, n, xNext, core.ErrDomain)
		}
		fNext := f(xNext)
		if !core.IsFinite(fNext) {
			return core.Result{}, core.NewIterationError(core.Newton, n, xNext,
				fmt.Errorf("%w: f(x) = %g", core.ErrNonFinite, fNext))
		}
		step := math.Abs(xNext - x)
		if err = rec.Append(core.Record{
			Index: n, A: x, FA: fx, DF: dfx,
			X: xNext, FX: fNext, Err: step,
		}); err != nil {
			return core.Result{}, err
		}
		if fNext == 0 {
			return rec.Result(core.Newton, xNext, n, core.ExactZero), nil
		}
		if reason, ok := core.Converged(o.StopMode, o.Tolerance, step, fNext); ok {
			return rec.Result(core.Newton, xNext, n, reason), nil
		}
		x, fx = xNext, fNext
	}

	return rec.Result(core.Newton, x, o.MaxIterations, core.MaxIterations), nil
}
