// Package core: functional configuration shared by every solver.
// This file defines:
//   - Option / Options (functional options, resolved per call),
//   - documented defaults (constants),
//   - WithX constructors that record invalid values instead of panicking,
//   - Gather, which applies options and surfaces the first recorded error.
//
// Design goals:
//   - Deterministic behavior: no global state, nothing outlives one solve.
//   - No dead switches: every field changes behavior and is covered by tests.
//   - History and hooks observe the iteration; they never alter its numbers.
package core

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the stopping tolerance when none is supplied.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations is the iteration cap when none is supplied.
	DefaultMaxIterations = 100

	// DefaultStopMode stops on the successive difference / bracket width.
	DefaultStopMode = StopByStep

	// DefaultHistoryMode keeps every Record.
	DefaultHistoryMode = HistoryFull
)

// Option configures a solve via functional arguments. An invalid value is
// recorded and surfaced as ErrInvalidInput when the solver runs.
type Option func(*Options)

// Options holds the effective configuration of one solve.
type Options struct {
	// Tolerance is the absolute stopping tolerance (> 0, finite).
	Tolerance float64

	// MaxIterations caps the number of update steps (≥ 1).
	MaxIterations int

	// Domain, when non-nil, must accept every evaluation point.
	Domain Predicate

	// StopMode selects step-size or residual convergence.
	StopMode StopMode

	// History selects full or summarized history retention.
	History HistoryMode

	// OnIteration, when non-nil, observes every Record as it is appended.
	// A non-nil error aborts the solve and is returned wrapped.
	OnIteration func(Record) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options populated with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		StopMode:      DefaultStopMode,
		History:       DefaultHistoryMode,
	}
}

// WithTolerance sets the absolute stopping tolerance.
//
//	tol > 0 and finite: accepted
//	otherwise: ErrInvalidInput at solve time
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.setErr(fmt.Errorf("%w: tolerance must be positive and finite (%g)", ErrInvalidInput, tol))
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration cap. n < 1 is rejected.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.setErr(fmt.Errorf("%w: max iterations must be >= 1 (%d)", ErrInvalidInput, n))
			return
		}
		o.MaxIterations = n
	}
}

// WithDomain restricts evaluation points to those accepted by p.
// A nil predicate restores the unrestricted domain.
func WithDomain(p Predicate) Option {
	return func(o *Options) { o.Domain = p }
}

// WithStopMode selects the stopping criterion.
func WithStopMode(m StopMode) Option {
	return func(o *Options) {
		if m != StopByStep && m != StopByResidual {
			o.setErr(fmt.Errorf("%w: unknown stop mode %d", ErrInvalidInput, int(m)))
			return
		}
		o.StopMode = m
	}
}

// WithHistory selects how much history the Result keeps.
func WithHistory(m HistoryMode) Option {
	return func(o *Options) {
		if m != HistoryFull && m != HistorySummary {
			o.setErr(fmt.Errorf("%w: unknown history mode %d", ErrInvalidInput, int(m)))
			return
		}
		o.History = m
	}
}

// WithOnIteration registers an observer called once per appended Record.
func WithOnIteration(fn func(Record) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// Gather applies opts over DefaultOptions and returns the first recorded error.
func Gather(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// InDomain reports whether x satisfies the configured domain predicate.
func (o Options) InDomain(x float64) bool {
	return o.Domain == nil || o.Domain(x)
}

// NewRecorder returns a Recorder honoring the configured history mode and hook.
func (o Options) NewRecorder() *Recorder {
	return NewRecorder(o.History, o.OnIteration)
}

// setErr keeps only the first violation so the reported error is deterministic.
func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
