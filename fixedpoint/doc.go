// Package fixedpoint implements Picard (fixed-point) iteration
//
//	x_{n+1} = g(x_n)
//
// where the iteration map g is chosen by the caller so that a root of f is a
// fixed point x* = g(x*). g must already be contractive near x*
// (|g'(x*)| < 1); no acceleration or convergence-order guarantee is made.
//
// Stopping modes:
//   - core.StopByStep (default): |x_{n+1} − x_n| < tolerance
//   - core.StopByResidual: |f(x_{n+1})| < tolerance, with f supplied
//     separately and used for the residual only, never for the update
//
// Divergence surfaces as an error rather than an endless loop: x0 and every
// iterate must be finite (core.ErrNonFinite, also matching core.ErrDomain)
// and accepted by the domain predicate (core.ErrDomain). An expansive g that
// stays finite simply exhausts the cap.
//
// The seed is recorded at Index 0; update n is recorded at Index n.
package fixedpoint
