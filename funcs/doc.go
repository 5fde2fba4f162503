// Package funcs compiles textual expressions in the variable x into
// core.Func and core.Predicate values, so problems can be described in a
// config file or on the command line.
//
// Syntax is that of github.com/expr-lang/expr: arithmetic, comparison and
// boolean operators, ** or ^ for powers, plus the math helpers below.
//
//	unary:   sin cos tan asin acos atan sinh cosh tanh exp log ln log10 log2 sqrt cbrt
//	binary:  pow atan2 hypot
//	builtin: abs ceil floor round min max
//	consts:  pi e
//
// A compiled program is immutable and safe for concurrent evaluation.
// Evaluation failures (e.g. a type error only visible at run time) make a
// Func return NaN, which every solver reports as core.ErrNonFinite, and make
// a Predicate return false.
package funcs
