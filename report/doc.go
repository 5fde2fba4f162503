// Package report renders solver results for people and machines.
//
// Table draws the iteration history with the columns that matter for the
// method that produced it; Summary prints the one-line outcome; Encode writes
// a Document envelope as JSON or YAML. Formatting lives only here: the
// solvers return plain numbers and never print.
//
// Columns per method:
//
//	bisection, regula-falsi: k  a  f(a)  b  f(b)  x  f(x)  err
//	secant:                  k  x_k  f(x_k)
//	newton:                  n  x_n  f(x_n)  f'(x_n)  x_{n+1}
//	fixed-point:             n  x_n  |Δx|  |f(x_n)|
package report
