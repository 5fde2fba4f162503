// Package regulafalsi implements the false-position (regula falsi) method:
// a bracket method whose trial point is the secant of the two endpoints
// rather than the midpoint.
//
// 🚀 How it works:
//
//	xr = b − f(b)·(a − b) / (f(a) − f(b))
//
//	The endpoint whose f-value shares the sign of f(xr) is replaced by xr,
//	so the sign change of [a, b] survives every step. The loop stops on
//	f(xr) == 0, on |xr − previous xr| < tolerance (or |f(xr)| < tolerance
//	in residual mode), or at the iteration cap.
//
// ⚠️ Stagnation:
//
//	For convex or concave f one endpoint may stay fixed for many
//	iterations while the other creeps towards the root. This is the
//	textbook slow-convergence behavior of regula falsi and is reproduced
//	as-is; no Illinois/Anderson–Björck correction is applied.
//
// Errors:
//   - core.ErrSignCondition - f(a) and f(b) share a sign
//   - core.ErrInvalidInput  - nil f, a == b, invalid options
//   - core.ErrNonFinite     - NaN/±Inf endpoint, trial point or function value
//   - core.ErrDomain        - a trial point is rejected by the domain predicate
//
// A zero at either endpoint is returned immediately as an exact root.
package regulafalsi
