package funcs_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvroot/core"
	"github.com/katalvlaran/lvroot/funcs"
	"github.com/katalvlaran/lvroot/newton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompile_Evaluates checks operators, helpers and constants.
func TestCompile_Evaluates(t *testing.T) {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"x - 2", 5, 3},
		{"2*x**3 + 8*x**2 - 3*x + 12", -4, 24},
		{"0.75*x^3 + 2*x^2 + x - 9", 1, -5.25},
		{"log(x + 2) + sin(x + 1)", -1, 0},
		{"ln(e)", 0, 1},
		{"cos(pi)", 0, -1},
		{"sqrt(x)", 16, 4},
		{"pow(x, 3)", 2, 8},
		{"abs(x)", -3, 3},
		{"hypot(3, x)", 4, 5},
		{"exp(0) + cbrt(27)", 0, 4},
		{"7", 0, 7},
	}
	for _, c := range cases {
		f, err := funcs.Compile(c.src)
		require.NoError(t, err, c.src)
		assert.InDelta(t, c.want, f(c.x), 1e-12, c.src)
	}
}

// TestCompile_NaNOnDomainViolation lets the solvers see non-finite values.
func TestCompile_NaNOnDomainViolation(t *testing.T) {
	f := funcs.MustCompile("log(x)")
	assert.True(t, math.IsNaN(f(-1)))
	assert.True(t, math.IsInf(f(0), -1))
}

// TestCompile_Errors rejects malformed input with ErrBadExpression.
func TestCompile_Errors(t *testing.T) {
	for _, src := range []string{"", "   ", "x +", "sin(", "y * 2", "x > 1 ? 'a'"} {
		_, err := funcs.Compile(src)
		assert.ErrorIs(t, err, funcs.ErrBadExpression, "%q", src)
	}
	assert.Panics(t, func() { funcs.MustCompile("(") })
}

// TestCompilePredicate builds domain restrictions.
func TestCompilePredicate(t *testing.T) {
	p, err := funcs.CompilePredicate("x > -2 && x != 0")
	require.NoError(t, err)
	assert.True(t, p(1))
	assert.False(t, p(-3))
	assert.False(t, p(0))

	_, err = funcs.CompilePredicate("x +")
	assert.ErrorIs(t, err, funcs.ErrBadExpression)
}

// TestCompile_DrivesSolver solves √2 from compiled expressions.
func TestCompile_DrivesSolver(t *testing.T) {
	f := funcs.MustCompile("x*x - 2")
	df := funcs.MustCompile("2*x")
	res, err := newton.Solve(f, df, 1, core.WithTolerance(1e-12))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-12)
}

// TestCompile_Concurrent evaluates one program from many goroutines.
func TestCompile_Concurrent(t *testing.T) {
	f := funcs.MustCompile("x*x + 1")
	var wg sync.WaitGroup
	errs := make([]bool, 32)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				x := float64(i*100 + k)
				if f(x) != x*x+1 {
					errs[i] = true
				}
			}
		}(i)
	}
	wg.Wait()
	for i, bad := range errs {
		assert.False(t, bad, "goroutine %d saw a wrong value", i)
	}
}
