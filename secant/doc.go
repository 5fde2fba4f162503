// Package secant implements the unbracketed two-point secant iteration
//
//	x_{k+1} = x_k − f(x_k)·(x_k − x_{k−1}) / (f(x_k) − f(x_{k−1}))
//
// which replaces Newton's derivative by a finite difference and converges
// with order ≈ 1.618 near a simple root.
//
// Safeguards applied before and after every update:
//   - the denominator f(x_k) − f(x_{k−1}) must be finite with magnitude
//     ≥ DenominatorFloor, otherwise core.ErrZeroDenominator (the classic
//     blow-up when two consecutive values coincide, e.g. near an inflection
//     point or on a flat stretch);
//   - x_{k+1} must be finite and accepted by the domain predicate,
//     otherwise core.ErrDomain (a NaN/±Inf iterate also matches
//     core.ErrNonFinite).
//
// The seeds are recorded at Index 0 and 1; the k-th update produces the
// Record with Index k+1. Result.Iterations counts updates.
//
// Errors:
//   - core.ErrInvalidInput    - x0 == x1, nil f, invalid options
//   - core.ErrZeroDenominator - denominator below floor or not finite
//   - core.ErrDomain          - seed or iterate outside the domain
//   - core.ErrNonFinite       - non-finite seed or iterate
package secant
