// Package lvroot is a small toolkit for finding roots of real functions of
// one variable, f(x) = 0, with the classical iterative methods and their
// full convergence history.
//
// 🚀 What is inside?
//
//	• Bracketing methods: bisection, regula falsi (false position)
//	• Open methods: secant, Newton–Raphson, Picard fixed-point iteration
//	• Bracket search: scan a grid for the first sign change
//	• Expressions: compile "log(x + 2) + sin(x + 1)" into a callable
//	• Reports: tables, one-line summaries, JSON/YAML documents
//	• A CLI (cmd/lvroot) driven by flags or a TOML problem file
//
// ✨ Design:
//
//   - Every solver is a pure function: it returns a core.Result with the
//     root, the number of update steps, why it stopped and the ordered
//     history of core.Record values. Nothing is printed.
//   - Hitting the iteration cap is a stop reason, not an error.
//   - Faults (no sign change, zero derivative, non-finite iterate, …) are
//     sentinel errors from package core, matched with errors.Is.
//   - Options are shared by all methods: tolerance, cap, domain predicate,
//     stopping criterion, history retention and a per-iteration hook.
//
// Layout:
//
//	core/        - Func, Record, Result, options, errors, history recorder
//	bisection/   - interval halving with an a-priori step count
//	regulafalsi/ - false position
//	secant/      - two-point secant iteration
//	newton/      - Newton–Raphson with an explicit derivative
//	fixedpoint/  - x_{n+1} = g(x_n)
//	bracket/     - grid scan for a sign-changing interval
//	funcs/       - expression compiler (expr-lang/expr)
//	report/      - lipgloss tables and JSON/YAML envelopes
//	config/      - TOML problem files with validation
//
// Quick example:
//
//	res, err := newton.Solve(
//	    func(x float64) float64 { return x*x - 2 },
//	    func(x float64) float64 { return 2 * x },
//	    1.0, core.WithTolerance(1e-10))
//	// res.Root ≈ 1.41421356237, res.Iterations == 5
//
//	go get github.com/katalvlaran/lvroot
package lvroot
