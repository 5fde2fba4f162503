// Package config loads a root-finding problem from a TOML file.
//
// A problem names the method, gives the functions as expressions in x (see
// package funcs) and the starting data the method needs:
//
//	method    = "newton"
//	function  = "x*x - 2"
//	derivative = "2*x"
//	guesses   = [1.0]
//	tolerance = 1e-10
//
//	[output]
//	format   = "table"
//	decimals = 6
//
// Field checks use go-playground/validator struct tags; Validate adds the
// per-method requirements (a bracket for bisection, a derivative for Newton,
// an iteration map for fixed point, …). Solver compiles the expressions and
// returns a ready core.Solver together with its options.
package config
