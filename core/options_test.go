package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvroot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGather_Defaults verifies the zero-option configuration.
func TestGather_Defaults(t *testing.T) {
	o, err := core.Gather()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultTolerance, o.Tolerance)
	assert.Equal(t, core.DefaultMaxIterations, o.MaxIterations)
	assert.Equal(t, core.StopByStep, o.StopMode)
	assert.Equal(t, core.HistoryFull, o.History)
	assert.True(t, o.InDomain(-1e300), "nil domain accepts everything")
}

// TestGather_Violations ensures invalid values surface as ErrInvalidInput.
func TestGather_Violations(t *testing.T) {
	cases := map[string]core.Option{
		"zero tolerance":     core.WithTolerance(0),
		"negative tolerance": core.WithTolerance(-1),
		"NaN tolerance":      core.WithTolerance(math.NaN()),
		"Inf tolerance":      core.WithTolerance(math.Inf(1)),
		"zero cap":           core.WithMaxIterations(0),
		"bad stop mode":      core.WithStopMode(core.StopMode(9)),
		"bad history mode":   core.WithHistory(core.HistoryMode(9)),
	}
	for name, opt := range cases {
		_, err := core.Gather(opt)
		assert.ErrorIs(t, err, core.ErrInvalidInput, name)
	}
}

// TestGather_FirstViolationWins keeps the reported error deterministic.
func TestGather_FirstViolationWins(t *testing.T) {
	_, err := core.Gather(core.WithMaxIterations(-3), core.WithTolerance(-1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max iterations")
}

// TestGather_Overrides applies every setter.
func TestGather_Overrides(t *testing.T) {
	hook := func(core.Record) error { return nil }
	o, err := core.Gather(
		core.WithTolerance(1e-3),
		core.WithMaxIterations(7),
		core.WithDomain(func(x float64) bool { return x > 0 }),
		core.WithStopMode(core.StopByResidual),
		core.WithHistory(core.HistorySummary),
		core.WithOnIteration(hook),
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, 1e-3, o.Tolerance)
	assert.Equal(t, 7, o.MaxIterations)
	assert.False(t, o.InDomain(-1))
	assert.True(t, o.InDomain(1))
	assert.Equal(t, core.StopByResidual, o.StopMode)
	assert.Equal(t, core.HistorySummary, o.History)
	assert.NotNil(t, o.OnIteration)
}

// TestRecorder_Modes compares full and summary retention.
func TestRecorder_Modes(t *testing.T) {
	full := core.NewRecorder(core.HistoryFull, nil)
	sum := core.NewRecorder(core.HistorySummary, nil)
	for i := 1; i <= 3; i++ {
		require.NoError(t, full.Append(core.Record{Index: i, X: float64(i)}))
		require.NoError(t, sum.Append(core.Record{Index: i, X: float64(i)}))
	}
	assert.Len(t, full.History(), 3)
	assert.Equal(t, []core.Record{{Index: 3, X: 3}}, sum.History())
	assert.Equal(t, 3, sum.Len())

	last, ok := full.Last()
	require.True(t, ok)
	assert.Equal(t, 3, last.Index)

	empty := core.NewRecorder(core.HistoryFull, nil)
	assert.Nil(t, empty.History())
}

// TestRecorder_OrderAndImmutability rejects out-of-order records and hands
// out copies.
func TestRecorder_OrderAndImmutability(t *testing.T) {
	r := core.NewRecorder(core.HistoryFull, nil)
	require.NoError(t, r.Append(core.Record{Index: 0}))
	require.NoError(t, r.Append(core.Record{Index: 1}))
	assert.ErrorIs(t, r.Append(core.Record{Index: 1}), core.ErrInvalidInput)

	h := r.History()
	h[0].X = 99
	assert.Equal(t, 0.0, r.History()[0].X, "callers cannot mutate recorded history")
}

// TestRecorder_HookAbort propagates hook errors.
func TestRecorder_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	r := core.NewRecorder(core.HistoryFull, func(rec core.Record) error {
		if rec.Index == 2 {
			return stop
		}
		return nil
	})
	require.NoError(t, r.Append(core.Record{Index: 1}))
	assert.ErrorIs(t, r.Append(core.Record{Index: 2}), stop)
}
