package config

import (
	"fmt"

	"github.com/katalvlaran/lvroot/bisection"
	"github.com/katalvlaran/lvroot/bracket"
	"github.com/katalvlaran/lvroot/core"
	"github.com/katalvlaran/lvroot/fixedpoint"
	"github.com/katalvlaran/lvroot/funcs"
	"github.com/katalvlaran/lvroot/newton"
	"github.com/katalvlaran/lvroot/regulafalsi"
	"github.com/katalvlaran/lvroot/secant"
)

// Options converts the numeric settings into solver options.
func (c *Config) Options() ([]core.Option, error) {
	stop, err := core.ParseStopMode(c.StopMode)
	if err != nil {
		return nil, err
	}
	hist, err := core.ParseHistoryMode(c.History)
	if err != nil {
		return nil, err
	}
	opts := []core.Option{
		core.WithTolerance(c.Tolerance),
		core.WithMaxIterations(c.MaxIterations),
		core.WithStopMode(stop),
		core.WithHistory(hist),
	}
	if c.Domain != "" {
		domain, err := funcs.CompilePredicate(c.Domain)
		if err != nil {
			return nil, fmt.Errorf("domain: %w", err)
		}
		opts = append(opts, core.WithDomain(domain))
	}
	return opts, nil
}

// compileOptional compiles src, returning nil for an empty source.
func compileOptional(field, src string) (core.Func, error) {
	if src == "" {
		return nil, nil
	}
	f, err := funcs.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return f, nil
}

// Solver validates c, compiles its expressions and returns the problem ready
// to solve. For bracketing methods with scan enabled and no explicit
// bracket, the interval is located with bracket.Scan first.
func (c *Config) Solver() (core.Solver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	method, err := core.ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}
	f, err := compileOptional("function", c.Function)
	if err != nil {
		return nil, err
	}

	switch method {
	case core.Bisection, core.RegulaFalsi:
		a, b, err := c.bracket(f)
		if err != nil {
			return nil, err
		}
		if method == core.Bisection {
			return bisection.Problem{F: f, A: a, B: b}, nil
		}
		return regulafalsi.Problem{F: f, A: a, B: b}, nil
	case core.Secant:
		return secant.Problem{F: f, X0: c.Guesses[0], X1: c.Guesses[1]}, nil
	case core.Newton:
		df, err := compileOptional("derivative", c.Derivative)
		if err != nil {
			return nil, err
		}
		return newton.Problem{F: f, DF: df, X0: c.Guesses[0]}, nil
	case core.FixedPoint:
		g, err := compileOptional("iteration", c.Iteration)
		if err != nil {
			return nil, err
		}
		return fixedpoint.Problem{G: g, F: f, X0: c.Guesses[0]}, nil
	default:
		return nil, fmt.Errorf("%w: method %s", ErrInvalid, method)
	}
}

func (c *Config) bracket(f core.Func) (float64, float64, error) {
	if len(c.Bracket) == 2 {
		return c.Bracket[0], c.Bracket[1], nil
	}
	iv, err := bracket.Scan(f, c.Scan.Lo, c.Scan.Hi, c.Scan.Step)
	if err != nil {
		return 0, 0, err
	}
	if iv.Exact() {
		// [x, x+step] has f(a) == 0: the solver returns x as an exact zero
		return iv.A, iv.A + c.Scan.Step, nil
	}
	return iv.A, iv.B, nil
}
