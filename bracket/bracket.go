package bracket

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroot/core"
)

// Default scan grid.
const (
	DefaultLo   = -100.0
	DefaultHi   = 100.0
	DefaultStep = 1.0

	// MaxSamples bounds the grid size.
	MaxSamples = 10_000_000
)

// ErrNoSignChange is returned when no sample pair changes sign.
var ErrNoSignChange = fmt.Errorf("bracket: no sign change found: %w", core.ErrBracket)

// Interval is a located bracket with the function values at its ends.
type Interval struct {
	A, FA float64
	B, FB float64
}

// Exact reports whether the scan hit a sample where f is exactly zero.
func (iv Interval) Exact() bool { return iv.A == iv.B }

// Width returns B − A.
func (iv Interval) Width() float64 { return iv.B - iv.A }

// Scan walks [lo, hi] in increments of step. The last sample is always hi,
// even when (hi−lo)/step is not integral.
func Scan(f core.Func, lo, hi, step float64) (Interval, error) {
	if f == nil {
		return Interval{}, fmt.Errorf("%w: nil function", core.ErrInvalidInput)
	}
	if !core.IsFinite(lo) || !core.IsFinite(hi) || !core.IsFinite(step) {
		return Interval{}, fmt.Errorf("%w: scan [%g, %g] step %g", core.ErrInvalidInput, lo, hi, step)
	}
	if lo >= hi {
		return Interval{}, fmt.Errorf("%w: empty scan range [%g, %g]", core.ErrInvalidInput, lo, hi)
	}
	if step <= 0 {
		return Interval{}, fmt.Errorf("%w: step must be positive (%g)", core.ErrInvalidInput, step)
	}
	n := math.Floor((hi - lo) / step)
	if n >= MaxSamples {
		return Interval{}, fmt.Errorf("%w: %g samples exceed the limit of %d", core.ErrInvalidInput, n+1, MaxSamples)
	}

	var (
		prev, fPrev float64
		havePrev    bool
	)
	visit := func(x float64) (Interval, bool) {
		fx := f(x)
		if !core.IsFinite(fx) {
			havePrev = false
			return Interval{}, false
		}
		if fx == 0 {
			return Interval{A: x, FA: 0, B: x, FB: 0}, true
		}
		if havePrev && !core.SameSign(fPrev, fx) {
			return Interval{A: prev, FA: fPrev, B: x, FB: fx}, true
		}
		prev, fPrev, havePrev = x, fx, true
		return Interval{}, false
	}

	last := int(n)
	for i := 0; i <= last; i++ {
		// x_i = lo + i·step
		if iv, ok := visit(lo + float64(i)*step); ok {
			return iv, nil
		}
	}
	if lo+float64(last)*step < hi {
		if iv, ok := visit(hi); ok {
			return iv, nil
		}
	}

	return Interval{}, fmt.Errorf("%w in [%g, %g] with step %g", ErrNoSignChange, lo, hi, step)
}
