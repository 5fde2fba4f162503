package fixedpoint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroot/core"
)

// Problem binds an iteration map, an optional residual function and a
// starting point for core.Solver.
type Problem struct {
	G  core.Func
	F  core.Func
	X0 float64
}

var _ core.Solver = Problem{}

// Solve runs Solve(p.G, p.F, p.X0, opts...).
func (p Problem) Solve(opts ...core.Option) (core.Result, error) {
	return Solve(p.G, p.F, p.X0, opts...)
}

// Solve iterates g from x0. f may be nil unless residual stopping is
// selected; when present, f(x_n) is recorded in Record.FX and must be finite.
func Solve(g, f core.Func, x0 float64, opts ...core.Option) (core.Result, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return core.Result{}, err
	}
	if g == nil {
		return core.Result{}, fmt.Errorf("%w: nil iteration map", core.ErrInvalidInput)
	}
	if f == nil && o.StopMode == core.StopByResidual {
		return core.Result{}, fmt.Errorf("%w: residual stopping requires f", core.ErrInvalidInput)
	}

	residual := func(step int, x float64) (float64, error) {
		if f == nil {
			return 0, nil
		}
		fx := f(x)
		if !core.IsFinite(fx) {
			return 0, core.NewIterationError(core.FixedPoint, step, x,
				fmt.Errorf("%w: f(x) = %g", core.ErrNonFinite, fx))
		}
		return fx, nil
	}

	if err = check(o, 0, x0); err != nil {
		return core.Result{}, err
	}
	f0, err := residual(0, x0)
	if err != nil {
		return core.Result{}, err
	}
	rec := o.NewRecorder()
	if err = rec.Append(core.Record{Index: 0, X: x0, FX: f0}); err != nil {
		return core.Result{}, err
	}

	x := x0
	for n := 1; n <= o.MaxIterations; n++ {
		xNext := g(x)
		if err = check(o, n, xNext); err != nil {
			return core.Result{}, err
		}
		fNext, err := residual(n, xNext)
		if err != nil {
			return core.Result{}, err
		}
		step := math.Abs(xNext - x)
		if err = rec.Append(core.Record{Index: n, A: x, X: xNext, FX: fNext, Err: step}); err != nil {
			return core.Result{}, err
		}
		if f != nil && fNext == 0 {
			return rec.Result(core.FixedPoint, xNext, n, core.ExactZero), nil
		}
		if reason, ok := core.Converged(o.StopMode, o.Tolerance, step, fNext); ok {
			return rec.Result(core.FixedPoint, xNext, n, reason), nil
		}
		x = xNext
	}

	return rec.Result(core.FixedPoint, x, o.MaxIterations, core.MaxIterations), nil
}

// check rejects non-finite and out-of-domain iterates.
func check(o core.Options, step int, x float64) error {
	if !core.IsFinite(x) {
		return core.NonFiniteIterate(core.FixedPoint, step, x)
	}
	if !o.InDomain(x) {
		return core.NewIterationError(core.FixedPoint, step, x, core.ErrDomain)
	}
	return nil
}
