// Package core provides the shared contract of every lvroot solver: the
// function abstractions a caller supplies, the per-step iteration record,
// the convergence result, the option set and the error taxonomy.
//
// 🚀 What lives here?
//
//	Nothing in core iterates. It only defines what the iteration engines
//	(bisection, regulafalsi, secant, newton, fixedpoint) consume and return:
//	  • Func / Predicate - caller-supplied ℝ→ℝ map and optional domain test
//	  • Record           - one immutable diagnostic tuple per step
//	  • Result           - root estimate, step count, stop reason, history
//	  • Recorder         - ordered, replayable accumulator of Records
//	  • Option           - tolerance, cap, domain, stop mode, history mode, hook
//	  • Err*             - sentinel errors matched with errors.Is
//
// ✨ Guarantees:
//   - Every solve is referentially transparent: identical inputs produce
//     bit-identical Results. No package-level mutable state exists.
//   - Reaching the iteration cap is a normal terminal state (MaxIterations),
//     never an error.
//   - Numeric faults (lost sign change, vanishing derivative or denominator,
//     domain escape, NaN/±Inf) are returned immediately as typed errors and
//     are never retried.
//
// ⚙️ Usage:
//
//	res, err := newton.Solve(f, df, 1.0,
//	    core.WithTolerance(1e-10),
//	    core.WithMaxIterations(50),
//	)
//	if errors.Is(err, core.ErrZeroDerivative) {
//	    // retry from a different starting point
//	}
//	fmt.Println(res.Root, res.Iterations, res.Reason)
//
// Concurrency:
//
//	Solvers hold no shared state, so independent calls may run in parallel
//	without coordination provided the supplied Func/Predicate values are pure.
package core
