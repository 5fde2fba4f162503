package bisection

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

// Iterations returns the number of halvings needed to shrink [a, b] to a
// width ≤ eps: ceil(log2(|b−a|/eps)), clamped at 0.
//
// The logarithm is only a first guess; the count is corrected against the
// exact widths |b−a|·2^−k so it always equals what Solve performs.
func Iterations(a, b, eps float64) (int, error) {
	width := math.Abs(b - a)
	if !core.IsFinite(width) {
		return 0, fmt.Errorf("%w: bracket [%g, %g]", core.ErrNonFinite, a, b)
	}
	if !(eps > 0) || math.IsInf(eps, 0) {
		return 0, fmt.Errorf("%w: tolerance must be positive and finite (%g)", core.ErrInvalidInput, eps)
	}
	if width <= eps {
		return 0, nil
	}
	n := int(math.Ceil(math.Log2(width / eps)))
	if n < 0 {
		n = 0
	}
	for n > 0 && math.Ldexp(width, -(n-1)) <= eps {
		n--
	}
	for math.Ldexp(width, -n) > eps {
		n++
	}
	return n, nil
}

// Solve finds a root of f inside the bracket [a, b].
//
// Algorithm Outline:
//  1. Validate inputs, order the bracket so a < b, evaluate f(a), f(b).
//  2. An exact zero at an endpoint returns immediately (0 iterations).
//  3. Same-signed endpoints fail with core.ErrBracket.
//  4. Step mode: perform min(Iterations(a,b,tol), cap) halvings.
//     Residual mode: halve until |f(m)| < tol or the cap is reached.
//  5. Root is the midpoint of the final bracket (or m on an exact zero).
//
// Record.Err holds the bracket width after each update.
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
	if a > b {
		a, b = b, a
	}
	for _, x := range [2]float64{a, b} {
		if !o.InDomain(x) {
			return core.Result{}, core.NewIterationError(core.Bisection, 0, x, core.ErrDomain)
		}
	}

	fa, fb := f(a), f(b)
	if !core.IsFinite(fa) {
		return core.Result{}, core.NewIterationError(core.Bisection, 0, a, core.ErrNonFinite)
	}
	if !core.IsFinite(fb) {
		return core.Result{}, core.NewIterationError(core.Bisection, 0, b, core.ErrNonFinite)
	}

	rec := o.NewRecorder()
	if fa == 0 {
		return rec.Result(core.Bisection, a, 0, core.ExactZero), nil
	}
	if fb == 0 {
		return rec.Result(core.Bisection, b, 0, core.ExactZero), nil
	}
	if core.SameSign(fa, fb) {
		return core.Result{}, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", core.ErrBracket, a, fa, b, fb)
	}

	width0 := b - a
	steps, needed := o.MaxIterations, -1
	if o.StopMode == core.StopByStep {
		if needed, err = Iterations(a, b, o.Tolerance); err != nil {
			return core.Result{}, err
		}
		steps = min(needed, o.MaxIterations)
	}

	for k := 1; k <= steps; k++ {
		m := (a + b) / 2
		if !o.InDomain(m) {
			return core.Result{}, core.NewIterationError(core.Bisection, k, m, core.ErrDomain)
		}
		fm := f(m)
		if !core.IsFinite(fm) {
			return core.Result{}, core.NewIterationError(core.Bisection, k, m, core.ErrNonFinite)
		}
		if err = rec.Append(core.Record{
			Index: k, A: a, FA: fa, B: b, FB: fb,
			X: m, FX: fm, Err: math.Ldexp(width0, -k),
		}); err != nil {
			return core.Result{}, err
		}
		if fm == 0 {
			return rec.Result(core.Bisection, m, k, core.ExactZero), nil
		}
		if o.StopMode == core.StopByResidual && math.Abs(fm) < o.Tolerance {
			return rec.Result(core.Bisection, m, k, core.ConvergedResidual), nil
		}
		// keep the endpoint whose sign differs from f(m)
		if core.SameSign(fa, fm) {
			a, fa = m, fm
		} else {
			b, fb = m, fm
		}
	}

	root := (a + b) / 2
	if steps == needed {
		return rec.Result(core.Bisection, root, steps, core.ConvergedStep), nil
	}
	return rec.Result(core.Bisection, root, steps, core.MaxIterations), nil
}
