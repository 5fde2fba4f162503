package regulafalsi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroot/core"
)

// Problem binds a function and bracket so it can be solved through core.Solver.
type Problem struct {
	F    core.Func
	A, B float64
}

var _ core.Solver = Problem{}

// Solve runs Solve(p.F, p.A, p.B, opts...).
func (p Problem) Solve(opts ...core.Option) (core.Result, error) {
	return Solve(p.F, p.A, p.B, opts...)
}

// Solve finds a root of f inside [a, b] by false position.
//
// The previous trial point starts at a, so the first Record.Err is |xr − a|.
// On cap exhaustion the last trial point is returned with core.MaxIterations.
func Solve(f core.Func, a, b float64, opts ...core.Option) (core.Result, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return core.Result{}, err
	}
	if f == nil {
		return core.Result{}, fmt.Errorf("%w: nil function", core.ErrInvalidInput)
	}
	if !core.IsFinite(a) || !core.IsFinite(b) {
		return core.Result{}, fmt.Errorf("%w: bracket [%g, %g]", core.ErrNonFinite, a, b)
	}
	if a == b {
		return core.Result{}, fmt.Errorf("%w: degenerate bracket a == b == %g", core.ErrInvalidInput, a)
	}
	for _, x := range [2]float64{a, b} {
		if !o.InDomain(x) {
			return core.Result{}, core.NewIterationError(core.RegulaFalsi, 0, x, core.ErrDomain)
		}
	}

	fa, fb := f(a), f(b)
	if !core.IsFinite(fa) {
		return core.Result{}, core.NewIterationError(core.RegulaFalsi, 0, a, core.ErrNonFinite)
	}
	if !core.IsFinite(fb) {
		return core.Result{}, core.NewIterationError(core.RegulaFalsi, 0, b, core.ErrNonFinite)
	}

	rec := o.NewRecorder()
	if fa == 0 {
		return rec.Result(core.RegulaFalsi, a, 0, core.ExactZero), nil
	}
	if fb == 0 {
		return rec.Result(core.RegulaFalsi, b, 0, core.ExactZero), nil
	}
	if core.SameSign(fa, fb) {
		return core.Result{}, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", core.ErrSignCondition, a, fa, b, fb)
	}

	prev := a
	xr := a
	for k := 1; k <= o.MaxIterations; k++ {
		// fa and fb have strictly opposite signs, so fa−fb is nonzero; it can
		// still overflow, in which case both values are scaled into [-1, 1]
		xr = falsePosition(a, fa, b, fb)
		if !core.IsFinite(xr) {
			return core.Result{}, core.NewIterationError(core.RegulaFalsi, k, xr, core.ErrNonFinite)
		}
		if !o.InDomain(xr) {
			return core.Result{}, core.NewIterationError(core.RegulaFalsi, k, xr, core.ErrDomain)
		}
		fxr := f(xr)
		if !core.IsFinite(fxr) {
			return core.Result{}, core.NewIterationError(core.RegulaFalsi, k, xr, core.ErrNonFinite)
		}
		step := math.Abs(xr - prev)
		if err = rec.Append(core.Record{
			Index: k, A: a, FA: fa, B: b, FB: fb,
			X: xr, FX: fxr, Err: step,
		}); err != nil {
			return core.Result{}, err
		}
		if fxr == 0 {
			return rec.Result(core.RegulaFalsi, xr, k, core.ExactZero), nil
		}
		if reason, ok := core.Converged(o.StopMode, o.Tolerance, step, fxr); ok {
			return rec.Result(core.RegulaFalsi, xr, k, reason), nil
		}
		if core.SameSign(fa, fxr) {
			a, fa = xr, fxr
		} else {
			b, fb = xr, fxr
		}
		prev = xr
	}

	return rec.Result(core.RegulaFalsi, xr, o.MaxIterations, core.MaxIterations), nil
}

// falsePosition returns the x-intercept of the chord through (a, fa) and
// (b, fb).
func falsePosition(a, fa, b, fb float64) float64 {
	d := fa - fb
	if core.IsFinite(d) {
		return b - fb*(a-b)/d
	}
	s := math.Max(math.Abs(fa), math.Abs(fb))
	fa, fb = fa/s, fb/s
	return b - fb*(a-b)/(fa-fb)
}
