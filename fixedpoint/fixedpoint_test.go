package fixedpoint_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvroot/core"
	"github.com/katalvlaran/lvroot/fixedpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poly(x float64) float64 { return 2*x*x*x + 8*x*x - 3*x + 12 }

// picard rearranges poly(x) = 0 as x = −4 + (3x − 12)/(2x²).
func picard(x float64) float64 { return -4 + (3*x-12)/(2*x*x) }

// TestSolve_PicardScenario: from −4 with ε=1e-3 the step size first drops
// below tolerance at the sixth update.
func TestSolve_PicardScenario(t *testing.T) {
	res, err := fixedpoint.Solve(picard, poly, -4, core.WithTolerance(1e-3))
	require.NoError(t, err)
	assert.Equal(t, core.FixedPoint, res.Method)
	assert.Equal(t, core.ConvergedStep, res.Reason)
	assert.Equal(t, 6, res.Iterations)
	assert.InDelta(t, -4.608039244709184, res.Root, 1e-12)
	assert.InDelta(t, -4.608076261257269, res.Root, 1e-3)

	require.Len(t, res.History, 7, "seed plus six updates")
	seed := res.History[0]
	assert.Equal(t, core.Record{Index: 0, X: -4, FX: poly(-4)}, seed)
	for i := 1; i < len(res.History); i++ {
		r := res.History[i]
		assert.Equal(t, i, r.Index)
		assert.Equal(t, res.History[i-1].X, r.A, "A holds the previous iterate")
		assert.Equal(t, math.Abs(r.X-r.A), r.Err)
		assert.Equal(t, poly(r.X), r.FX)
	}
	assert.GreaterOrEqual(t, res.History[5].Err, 1e-3)
	assert.Less(t, res.History[6].Err, 1e-3)
}

// TestSolve_Residual stops on |f(x)| instead of the step size.
func TestSolve_Residual(t *testing.T) {
	res, err := fixedpoint.Solve(picard, poly, -4,
		core.WithTolerance(1e-3), core.WithStopMode(core.StopByResidual))
	require.NoError(t, err)
	assert.Equal(t, core.ConvergedResidual, res.Reason)
	assert.Equal(t, 7, res.Iterations)
	assert.Less(t, math.Abs(poly(res.Root)), 1e-3)

	_, err = fixedpoint.Solve(picard, nil, -4, core.WithStopMode(core.StopByResidual))
	assert.ErrorIs(t, err, core.ErrInvalidInput, "residual mode needs f")
}

// TestSolve_Contractive covers cos and a tight tolerance on the Picard map.
func TestSolve_Contractive(t *testing.T) {
	res, err := fixedpoint.Solve(math.Cos, nil, 1, core.WithTolerance(1e-10))
	require.NoError(t, err)
	assert.Equal(t, 58, res.Iterations)
	assert.InDelta(t, 0.7390851332151607, res.Root, 1e-9)
	assert.Zero(t, res.History[0].FX, "no residual without f")

	res, err = fixedpoint.Solve(picard, poly, -4, core.WithTolerance(1e-10))
	require.NoError(t, err)
	assert.Equal(t, 15, res.Iterations)
	assert.InDelta(t, -4.608076261257269, res.Root, 1e-9)
}

// TestSolve_Domain keeps a log-based map inside its domain.
func TestSolve_Domain(t *testing.T) {
	g := func(x float64) float64 { return math.Log(x+2) + math.Sin(x+1) }
	res, err := fixedpoint.Solve(g, nil, 1,
		core.WithTolerance(1e-12),
		core.WithDomain(func(x float64) bool { return x > -2 }))
	require.NoError(t, err)
	assert.Equal(t, 64, res.Iterations)
	assert.InDelta(t, 1.7217869507973238, res.Root, 1e-11)

	_, err = fixedpoint.Solve(g, nil, -3, core.WithDomain(func(x float64) bool { return x > -2 }))
	assert.ErrorIs(t, err, core.ErrDomain, "seed outside the domain")

	_, err = fixedpoint.Solve(func(x float64) float64 { return x - 1 }, nil, 0,
		core.WithDomain(func(x float64) bool { return x > -5 }))
	var ie *core.IterationError
	require.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, core.ErrDomain)
	assert.Equal(t, 5, ie.Step)
	assert.Equal(t, -5.0, ie.X)
}

// TestSolve_Divergence: expansive maps either overflow or exhaust the cap.
func TestSolve_Divergence(t *testing.T) {
	_, err := fixedpoint.Solve(func(x float64) float64 { return x * x }, nil, 2)
	var ie *core.IterationError
	require.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, core.ErrNonFinite)
	assert.ErrorIs(t, err, core.ErrDomain)
	assert.Equal(t, 10, ie.Step, "2^(2^10) overflows")

	res, err := fixedpoint.Solve(func(x float64) float64 { return 2*x + 1 }, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, core.MaxIterations, res.Reason)
	assert.Equal(t, core.DefaultMaxIterations, res.Iterations)
	assert.Equal(t, res.History[len(res.History)-1].X, res.Root)

	_, err = fixedpoint.Solve(func(x float64) float64 { return 1 / x }, nil, 0)
	assert.ErrorIs(t, err, core.ErrNonFinite, "pole at the seed")
}

// TestSolve_Errors covers argument validation and residual failures.
func TestSolve_Errors(t *testing.T) {
	_, err := fixedpoint.Solve(nil, nil, 0)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = fixedpoint.Solve(math.Cos, nil, math.NaN())
	assert.ErrorIs(t, err, core.ErrNonFinite)

	_, err = fixedpoint.Solve(math.Cos, nil, 1, core.WithMaxIterations(0))
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = fixedpoint.Solve(math.Cos, func(x float64) float64 { return math.Log(x - 1) }, 2)
	assert.ErrorIs(t, err, core.ErrNonFinite, "f(cos 2) = log of a negative number")
}

// TestSolve_ExactZero stops when f vanishes at an iterate.
func TestSolve_ExactZero(t *testing.T) {
	g := func(x float64) float64 { return x / 2 }
	res, err := fixedpoint.Solve(g, func(x float64) float64 { return x - 1 }, 4)
	require.NoError(t, err)
	assert.Equal(t, core.ExactZero, res.Reason)
	assert.Equal(t, 1.0, res.Root)
	assert.Equal(t, 2, res.Iterations)
}

// TestSolve_IdempotentAndSummary checks determinism and history retention.
func TestSolve_IdempotentAndSummary(t *testing.T) {
	p := fixedpoint.Problem{G: picard, F: poly, X0: -4}
	r1, err := p.Solve()
	require.NoError(t, err)
	r2, err := p.Solve()
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	sum, err := p.Solve(core.WithHistory(core.HistorySummary))
	require.NoError(t, err)
	assert.Equal(t, r1.Root, sum.Root)
	assert.Equal(t, []core.Record{r1.History[len(r1.History)-1]}, sum.History)

	stop := errors.New("stop")
	_, err = p.Solve(core.WithOnIteration(func(r core.Record) error {
		if r.Index == 0 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop, "the seed record reaches the hook too")
}
