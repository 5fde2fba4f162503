package core

import "fmt"

// Func is a caller-supplied scalar mapping ℝ→ℝ. It must be pure: solvers may
// evaluate it any number of times and rely on identical outputs for identical
// inputs.
type Func func(x float64) float64

// Predicate reports whether x lies inside the caller's intended domain.
// A nil Predicate accepts every real number.
type Predicate func(x float64) bool

// Method identifies the iteration engine that produced a Result.
type Method int

const (
	// Bisection halves a sign-changing bracket.
	Bisection Method = iota
	// RegulaFalsi narrows a bracket with a secant-weighted interior point.
	RegulaFalsi
	// Secant is the unbracketed two-point finite-difference iteration.
	Secant
	// Newton is the derivative-based Newton–Raphson iteration.
	Newton
	// FixedPoint is Picard iteration x_{n+1} = g(x_n).
	FixedPoint
)

var methodNames = [...]string{
	Bisection:   "bisection",
	RegulaFalsi: "regula-falsi",
	Secant:      "secant",
	Newton:      "newton",
	FixedPoint:  "fixed-point",
}

// String returns the kebab-case method name used by the CLI and reports.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("method(%d)", int(m))
	}
	return methodNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseMethod maps a method name back to its Method value.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if name == s {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidInput, s)
}

// StopReason is the terminal state of a successful solve.
type StopReason int

const (
	// ConvergedStep: the step (or bracket width) fell below the tolerance.
	ConvergedStep StopReason = iota
	// ConvergedResidual: |f(x)| fell below the tolerance.
	ConvergedResidual
	// ExactZero: an evaluation point produced f(x) == 0 exactly.
	ExactZero
	// MaxIterations: the iteration cap was reached; Root is the best estimate.
	MaxIterations
)

// String returns a stable, human-readable name for the reason.
func (r StopReason) String() string {
	switch r {
	case ConvergedStep:
		return "converged-by-step-size"
	case ConvergedResidual:
		return "converged-by-residual"
	case ExactZero:
		return "exact-zero-hit"
	case MaxIterations:
		return "max-iterations-exhausted"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r StopReason) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Converged reports whether the solve ended on a convergence criterion
// (including an exact zero) rather than on the iteration cap.
func (r StopReason) Converged() bool { return r != MaxIterations }

// StopMode selects the stopping criterion.
type StopMode int

const (
	// StopByStep stops when the successive difference (or bracket width)
	// drops below the tolerance. Default.
	StopByStep StopMode = iota
	// StopByResidual stops when |f(x)| drops below the tolerance.
	StopByResidual
)

// String returns "step" or "residual".
func (m StopMode) String() string {
	if m == StopByResidual {
		return "residual"
	}
	return "step"
}

// ParseStopMode maps "step"/"residual" to a StopMode.
func ParseStopMode(s string) (StopMode, error) {
	switch s {
	case "", "step", "delta":
		return StopByStep, nil
	case "residual":
		return StopByResidual, nil
	}
	return 0, fmt.Errorf("%w: unknown stop mode %q", ErrInvalidInput, s)
}

// HistoryMode gates how much of the iteration history a Result retains.
// It never changes the numeric path of a solve.
type HistoryMode int

const (
	// HistoryFull keeps every Record. Default.
	HistoryFull HistoryMode = iota
	// HistorySummary keeps only the final Record.
	HistorySummary
)

// ParseHistoryMode maps "full"/"summary" to a HistoryMode.
func ParseHistoryMode(s string) (HistoryMode, error) {
	switch s {
	case "", "full":
		return HistoryFull, nil
	case "summary":
		return HistorySummary, nil
	}
	return 0, fmt.Errorf("%w: unknown history mode %q", ErrInvalidInput, s)
}

// Record is one diagnostic tuple of the convergence trace.
//
// Field meaning per method:
//   - bisection, regula falsi: A/FA and B/FB are the bracket before the
//     update, X/FX the trial point (midpoint or false-position point).
//     Err is the bracket width after the update (bisection) or
//     |xr − previous xr| (regula falsi).
//   - secant: A/FA = x_{k−1}, B/FB = x_k, X/FX = x_{k+1}, Err = |x_{k+1} − x_k|.
//     The two seeds are recorded at Index 0 and 1 with only X/FX set.
//   - newton: A/FA = x_n, DF = f'(x_n), X/FX = x_{n+1}, Err = |x_{n+1} − x_n|.
//   - fixed point: A = x_n, X = g(x_n), FX = f(X) when f is supplied,
//     Err = |X − A|. The seed is recorded at Index 0.
type Record struct {
	Index int
	A     float64
	FA    float64
	B     float64
	FB    float64
	DF    float64
	X     float64
	FX    float64
	Err   float64
}

// Result is the outcome of one solve call.
type Result struct {
	// Method that produced the result.
	Method Method

	// Root is the final estimate of x*.
	Root float64

	// Iterations is the number of update steps actually performed.
	Iterations int

	// Reason tells why the loop ended.
	Reason StopReason

	// History is the ordered convergence trace (possibly summarized).
	History []Record
}

// Solver is the capability every method package implements through its
// Problem type: run the iteration with the given options.
type Solver interface {
	Solve(opts ...Option) (Result, error)
}
