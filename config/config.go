package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvroot/bracket"
	"github.com/katalvlaran/lvroot/core"
	"github.com/katalvlaran/lvroot/report"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config describes one solve.
type Config struct {
	Method     string `toml:"method" validate:"required,oneof=bisection regula-falsi secant newton fixed-point"`
	Function   string `toml:"function"`
	Derivative string `toml:"derivative"`
	Iteration  string `toml:"iteration"`
	Domain     string `toml:"domain"`

	// Bracket is [a, b] for the bracketing methods.
	Bracket []float64 `toml:"bracket" validate:"omitempty,len=2"`
	// Guesses holds x0 (newton, fixed-point) or x0, x1 (secant).
	Guesses []float64 `toml:"guesses" validate:"omitempty,min=1,max=2"`

	Tolerance     float64 `toml:"tolerance" validate:"gt=0"`
	MaxIterations int     `toml:"max_iterations" validate:"gt=0"`
	StopMode      string  `toml:"stop_mode" validate:"omitempty,oneof=step delta residual"`
	History       string  `toml:"history" validate:"omitempty,oneof=full summary"`

	Scan   ScanConfig   `toml:"scan"`
	Output OutputConfig `toml:"output"`
}

// ScanConfig controls the automatic bracket search.
type ScanConfig struct {
	Enabled bool    `toml:"enabled"`
	Lo      float64 `toml:"lo"`
	Hi      float64 `toml:"hi" validate:"gtfield=Lo"`
	Step    float64 `toml:"step" validate:"gt=0"`
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	Format   string `toml:"format" validate:"omitempty,oneof=table text json yaml yml"`
	Decimals int    `toml:"decimals" validate:"min=0,max=17"`
}

// Default returns a configuration carrying the library defaults. Method and
// the problem data are left empty.
func Default() *Config {
	return &Config{
		Tolerance:     core.DefaultTolerance,
		MaxIterations: core.DefaultMaxIterations,
		StopMode:      core.DefaultStopMode.String(),
		History:       "full",
		Scan: ScanConfig{
			Lo:   bracket.DefaultLo,
			Hi:   bracket.DefaultHi,
			Step: bracket.DefaultStep,
		},
		Output: OutputConfig{
			Format:   report.FormatTable.String(),
			Decimals: report.DefaultDecimals,
		},
	}
}

// Load reads and validates the TOML file at path. Values absent from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of Default and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and the per-method requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	method, err := core.ParseMethod(c.Method)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	stop, err := core.ParseStopMode(c.StopMode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var problems []string
	need := func(cond bool, msg string) {
		if !cond {
			problems = append(problems, msg)
		}
	}
	switch method {
	case core.Bisection, core.RegulaFalsi:
		need(c.Function != "", "function is required")
		need(len(c.Bracket) == 2 || c.Scan.Enabled, "bracket = [a, b] is required unless scan is enabled")
	case core.Secant:
		need(c.Function != "", "function is required")
		need(len(c.Guesses) == 2, "guesses = [x0, x1] is required")
	case core.Newton:
		need(c.Function != "", "function is required")
		need(c.Derivative != "", "derivative is required")
		need(len(c.Guesses) >= 1, "guesses = [x0] is required")
	case core.FixedPoint:
		need(c.Iteration != "", "iteration is required")
		need(len(c.Guesses) >= 1, "guesses = [x0] is required")
		need(stop != core.StopByResidual || c.Function != "", "residual stopping requires function")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrInvalid, method, strings.Join(problems, "; "))
	}
	return nil
}
