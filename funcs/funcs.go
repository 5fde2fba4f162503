package funcs

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/lvroot/core"
)

// ErrBadExpression wraps every compilation failure.
var ErrBadExpression = errors.New("funcs: bad expression")

// env is the evaluation environment seen by expressions.
type env struct {
	X  float64 `expr:"x"`
	Pi float64 `expr:"pi"`
	E  float64 `expr:"e"`
}

var unary = map[string]func(float64) float64{
	"sin": math.Sin, "cos": math.Cos, "tan": math.Tan,
	"asin": math.Asin, "acos": math.Acos, "atan": math.Atan,
	"sinh": math.Sinh, "cosh": math.Cosh, "tanh": math.Tanh,
	"exp": math.Exp, "log": math.Log, "ln": math.Log,
	"log10": math.Log10, "log2": math.Log2,
	"sqrt": math.Sqrt, "cbrt": math.Cbrt,
}

var binary = map[string]func(float64, float64) float64{
	"pow":   math.Pow,
	"atan2": math.Atan2,
	"hypot": math.Hypot,
}

// options builds the compiler configuration shared by Compile and
// CompilePredicate.
func options() []expr.Option {
	opts := []expr.Option{expr.Env(env{})}
	for name, fn := range unary {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("%s: want 1 argument, got %d", name, len(params))
			}
			x, err := toFloat(params[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return fn(x), nil
		}))
	}
	for name, fn := range binary {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 2 {
				return nil, fmt.Errorf("%s: want 2 arguments, got %d", name, len(params))
			}
			x, err := toFloat(params[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			y, err := toFloat(params[1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return fn(x, y), nil
		}))
	}
	return opts
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("non-numeric argument %v (%T)", v, v)
	}
}

func compile(src string, extra ...expr.Option) (*vm.Program, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty source", ErrBadExpression)
	}
	program, err := expr.Compile(src, append(options(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadExpression, src, err)
	}
	return program, nil
}

// Compile turns src into a real-valued function of x.
func Compile(src string) (core.Func, error) {
	program, err := compile(src, expr.AsFloat64())
	if err != nil {
		return nil, err
	}
	return func(x float64) float64 {
		out, err := expr.Run(program, env{X: x, Pi: math.Pi, E: math.E})
		if err != nil {
			return math.NaN()
		}
		v, ok := out.(float64)
		if !ok {
			return math.NaN()
		}
		return v
	}, nil
}

// MustCompile is like Compile but panics on error. Intended for
// package-level variables and tests.
func MustCompile(src string) core.Func {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

// CompilePredicate turns src into a boolean condition on x, typically a
// domain restriction such as "x > -2".
func CompilePredicate(src string) (core.Predicate, error) {
	program, err := compile(src, expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(x float64) bool {
		out, err := expr.Run(program, env{X: x, Pi: math.Pi, E: math.E})
		if err != nil {
			return false
		}
		ok, _ := out.(bool)
		return ok
	}, nil
}
