// Package bracket locates a sign-changing interval for the bracketing solvers.
//
// Scan samples f on the grid lo, lo+step, …, hi and returns the first pair of
// neighbouring samples whose values have strictly opposite signs. A sample
// that is exactly zero is returned as the degenerate interval [x, x].
// Non-finite samples break the grid: no interval ever spans one.
//
// The defaults (DefaultLo, DefaultHi, DefaultStep) walk the integers in
// [-100, 100].
//
//	iv, err := bracket.Scan(f, bracket.DefaultLo, bracket.DefaultHi, bracket.DefaultStep)
//	if err != nil { ... }
//	res, err := bisection.Solve(f, iv.A, iv.B)
package bracket
