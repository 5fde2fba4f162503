// Package bisection finds a root of a continuous f by repeatedly halving a
// sign-changing bracket [a, b].
//
// 🚀 How it works:
//
//	Each step evaluates the midpoint m = (a+b)/2. If f(m) == 0 the solve
//	stops with ExactZero; otherwise the endpoint whose f-value shares the
//	sign of f(m) is replaced by m, so f(a) and f(b) keep opposite signs.
//
// ✨ Key properties:
//   - the bracket width after k steps is exactly |b−a|/2^k
//   - the step count is known in advance: Iterations(a, b, ε) =
//     ceil(log2((b−a)/ε)), the smallest k with (b−a)/2^k ≤ ε
//   - the final midpoint is within ε/2 of a true root
//   - residual mode (core.WithStopMode(core.StopByResidual)) stops instead
//     when |f(m)| < tolerance, bounded only by the iteration cap
//
// ⚙️ Usage:
//
//	res, err := bisection.Solve(func(x float64) float64 { return x - 2 }, 0, 3,
//	    core.WithTolerance(1e-3))
//	// res.Root ≈ 2.000, res.Iterations == 12
//
// Errors:
//   - core.ErrInvalidInput - nil f, a == b, invalid tolerance/cap
//   - core.ErrNonFinite    - NaN/±Inf endpoint or function value
//   - core.ErrBracket      - f(a) and f(b) share a sign
//   - core.ErrDomain       - a trial point is rejected by the domain predicate
//
// Complexity: O(log2((b−a)/ε)) evaluations of f, O(k) memory for the history.
package bisection
