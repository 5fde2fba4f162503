package config_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroot/bisection"
	"github.com/katalvlaran/lvroot/config"
	"github.com/katalvlaran/lvroot/core"
	"github.com/katalvlaran/lvroot/funcs"
	"github.com/katalvlaran/lvroot/newton"
)

// TestDefault mirrors the library defaults.
func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equal(t, core.DefaultTolerance, c.Tolerance)
	assert.Equal(t, core.DefaultMaxIterations, c.MaxIterations)
	assert.Equal(t, "step", c.StopMode)
	assert.Equal(t, -100.0, c.Scan.Lo)
	assert.Equal(t, 100.0, c.Scan.Hi)
	assert.Equal(t, 1.0, c.Scan.Step)
	assert.Equal(t, "table", c.Output.Format)
	assert.Equal(t, 4, c.Output.Decimals)
	assert.ErrorIs(t, c.Validate(), config.ErrInvalid, "method is required")
}

// TestLoad_Newton reads a file, keeps defaults for absent keys and solves.
func TestLoad_Newton(t *testing.T) {
	c, err := config.Load("testdata/newton.toml")
	require.NoError(t, err)
	assert.Equal(t, "newton", c.Method)
	assert.Equal(t, []float64{1}, c.Guesses)
	assert.Equal(t, core.DefaultMaxIterations, c.MaxIterations)
	assert.Equal(t, "json", c.Output.Format)
	assert.Equal(t, 6, c.Output.Decimals)

	s, err := c.Solver()
	require.NoError(t, err)
	assert.IsType(t, newton.Problem{}, s)
	opts, err := c.Options()
	require.NoError(t, err)
	res, err := s.Solve(opts...)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-10)
	assert.Equal(t, 5, res.Iterations)
}

// TestLoad_Scan locates the bracket automatically.
func TestLoad_Scan(t *testing.T) {
	c, err := config.Load("testdata/scan.toml")
	require.NoError(t, err)
	s, err := c.Solver()
	require.NoError(t, err)
	p, ok := s.(bisection.Problem)
	require.True(t, ok)
	assert.Equal(t, 1.0, p.A)
	assert.Equal(t, 2.0, p.B)

	opts, err := c.Options()
	require.NoError(t, err)
	res, err := s.Solve(opts...)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Iterations)
}

// TestLoad_Errors covers missing files, unknown keys and bad syntax.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("testdata/missing.toml")
	assert.Error(t, err)

	_, err = config.Load("testdata/unknown.toml")
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "toleranse")

	_, err = config.Decode(strings.NewReader(`method = `))
	assert.Error(t, err)
}

// TestValidate_PerMethod checks the cross-field requirements.
func TestValidate_PerMethod(t *testing.T) {
	cases := map[string]struct {
		src   string
		valid bool
	}{
		"bisection ok":          {`method="bisection"` + "\n" + `function="x-2"` + "\n" + `bracket=[0.0,3.0]`, true},
		"bisection no bracket":  {`method="bisection"` + "\n" + `function="x-2"`, false},
		"bisection bad bracket": {`method="bisection"` + "\n" + `function="x-2"` + "\n" + `bracket=[0.0]`, false},
		"regula falsi scan":     {`method="regula-falsi"` + "\n" + `function="x-2"` + "\n[scan]\nenabled=true", true},
		"secant one guess":      {`method="secant"` + "\n" + `function="x-2"` + "\n" + `guesses=[1.0]`, false},
		"newton no derivative":  {`method="newton"` + "\n" + `function="x-2"` + "\n" + `guesses=[1.0]`, false},
		"fixed point ok":        {`method="fixed-point"` + "\n" + `iteration="cos(x)"` + "\n" + `guesses=[1.0]`, true},
		"fixed point residual":  {`method="fixed-point"` + "\n" + `iteration="cos(x)"` + "\n" + `guesses=[1.0]` + "\n" + `stop_mode="residual"`, false},
		"unknown method":        {`method="brent"` + "\n" + `function="x"`, false},
		"zero tolerance":        {`method="secant"` + "\n" + `function="x-2"` + "\n" + `guesses=[0.0,1.0]` + "\n" + `tolerance=0.0`, false},
		"bad format":            {`method="secant"` + "\n" + `function="x-2"` + "\n" + `guesses=[0.0,1.0]` + "\n[output]\nformat=\"xml\"", false},
		"bad scan range":        {`method="secant"` + "\n" + `function="x-2"` + "\n" + `guesses=[0.0,1.0]` + "\n[scan]\nlo=5.0\nhi=1.0", false},
	}
	for name, c := range cases {
		_, err := config.Decode(strings.NewReader(c.src))
		if c.valid {
			assert.NoError(t, err, name)
		} else {
			assert.ErrorIs(t, err, config.ErrInvalid, name)
		}
	}
}

// TestSolver_BadExpressions surfaces compilation failures.
func TestSolver_BadExpressions(t *testing.T) {
	c := config.Default()
	c.Method = "secant"
	c.Function = "x +"
	c.Guesses = []float64{0, 1}
	_, err := c.Solver()
	assert.ErrorIs(t, err, funcs.ErrBadExpression)

	c.Function = "x - 1"
	c.Domain = "x >"
	_, err = c.Options()
	assert.ErrorIs(t, err, funcs.ErrBadExpression)
}

// TestSolver_ScanFailure reports a function without sign change.
func TestSolver_ScanFailure(t *testing.T) {
	c := config.Default()
	c.Method = "bisection"
	c.Function = "x*x + 1"
	c.Scan.Enabled = true
	_, err := c.Solver()
	assert.ErrorIs(t, err, core.ErrBracket)
}

// TestSolver_ScanExactZero turns a sampled root into an endpoint zero.
func TestSolver_ScanExactZero(t *testing.T) {
	c := config.Default()
	c.Method = "regula-falsi"
	c.Function = "x - 3"
	c.Scan.Enabled = true
	s, err := c.Solver()
	require.NoError(t, err)
	res, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, core.ExactZero, res.Reason)
	assert.Equal(t, 3.0, res.Root)
	assert.Zero(t, res.Iterations)
}
