// Package newton implements the Newton–Raphson iteration
//
//	x_{n+1} = x_n − f(x_n) / f'(x_n)
//
// using a caller-supplied derivative (no symbolic or numeric
// differentiation is performed).
//
// Before every update |f'(x_n)| is compared with DerivativeFloor; a smaller
// magnitude fails with core.ErrZeroDerivative, wrapped in a
// *core.IterationError naming x_n, and the caller should retry from another
// starting point. A NaN or infinite f(x_n) or f'(x_n) fails with
// core.ErrNonFinite.
//
// Best-effort policy: when the cap is reached the last computed iterate is
// returned with Reason core.MaxIterations and Iterations equal to the cap.
// This is a normal result, not an error, exactly like the bracket methods.
//
// Convergence is quadratic near a simple root: on f(x) = x² − 2 from
// x0 = 1 the iteration reaches √2 to 1e-10 in five steps.
package newton
