package core

import "math"

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// SameSign reports whether a and b are both non-zero with the same sign.
// Comparing signs avoids the underflow of a*b for tiny magnitudes.
func SameSign(a, b float64) bool {
	if a == 0 || b == 0 {
		return false
	}
	return math.Signbit(a) == math.Signbit(b)
}

// Converged reports whether a step of size step or a residual |fx| meets tol
// under mode, returning the matching StopReason.
func Converged(mode StopMode, tol, step, fx float64) (StopReason, bool) {
	if mode == StopByResidual {
		return ConvergedResidual, math.Abs(fx) < tol
	}
	return ConvergedStep, step < tol
}
