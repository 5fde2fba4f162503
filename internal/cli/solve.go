package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvroot/config"
	"github.com/katalvlaran/lvroot/core"
	"github.com/katalvlaran/lvroot/report"
)

// addCommonFlags registers the settings every solve command accepts.
func addCommonFlags(fs *pflag.FlagSet) {
	fs.StringP("function", "f", "", "f(x) as an expression in x")
	fs.String("domain", "", "domain predicate in x, e.g. \"x > -2\"")
	fs.Float64P("tolerance", "t", core.DefaultTolerance, "convergence tolerance ε")
	fs.IntP("max-iterations", "n", core.DefaultMaxIterations, "iteration cap")
	fs.String("stop", "step", "stopping criterion: step or residual")
	fs.String("history", "full", "history retention: full or summary")
	fs.StringP("format", "o", "table", "output format: table, json or yaml")
	fs.Int("decimals", report.DefaultDecimals, "digits after the decimal point in tables")
}

// loadConfig starts from the --config file (or the defaults) and applies
// every flag the user set explicitly. method, when non-empty, overrides the
// file's method.
func (a *app) loadConfig(cmd *cobra.Command, method string) (*config.Config, error) {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		a.logger.Debug("config loaded", "path", a.cfgFile, "method", cfg.Method)
	}
	if method != "" {
		cfg.Method = method
	}

	fs := cmd.Flags()
	str := func(name string, dst *string) {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
	str("function", &cfg.Function)
	str("derivative", &cfg.Derivative)
	str("iteration", &cfg.Iteration)
	str("domain", &cfg.Domain)
	str("stop", &cfg.StopMode)
	str("history", &cfg.History)
	str("format", &cfg.Output.Format)
	if fs.Changed("tolerance") {
		cfg.Tolerance, _ = fs.GetFloat64("tolerance")
	}
	if fs.Changed("max-iterations") {
		cfg.MaxIterations, _ = fs.GetInt("max-iterations")
	}
	if fs.Changed("decimals") {
		cfg.Output.Decimals, _ = fs.GetInt("decimals")
	}
	if fs.Changed("scan") {
		cfg.Scan.Enabled, _ = fs.GetBool("scan")
	}
	cfg.Bracket = overridePair(fs, "a", "b", cfg.Bracket)
	cfg.Guesses = overridePair(fs, "x0", "x1", cfg.Guesses)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overridePair merges the float flags first/second into cur. A pair is only
// produced when the command defines second; otherwise a single value.
func overridePair(fs *pflag.FlagSet, first, second string, cur []float64) []float64 {
	hasSecond := fs.Lookup(second) != nil
	changed := fs.Changed(first) || (hasSecond && fs.Changed(second))
	if !changed {
		return cur
	}
	out := make([]float64, 1, 2)
	if hasSecond {
		out = out[:2]
	}
	copy(out, cur)
	if fs.Changed(first) {
		out[0], _ = fs.GetFloat64(first)
	}
	if hasSecond && fs.Changed(second) {
		out[1], _ = fs.GetFloat64(second)
	}
	return out
}

// solve builds the problem described by cfg, runs it and writes the report.
func (a *app) solve(cmd *cobra.Command, cfg *config.Config) error {
	log := a.logger.With("method", cfg.Method)

	solver, err := cfg.Solver()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	opts = append(opts, core.WithOnIteration(func(r core.Record) error {
		log.Debug("iteration", "k", r.Index, "x", r.X, "fx", r.FX, "err", r.Err)
		return nil
	}))

	start := time.Now()
	res, err := solver.Solve(opts...)
	if err != nil {
		log.Error("solve failed", "error", err)
		return err
	}
	log.Info("solve finished",
		"root", res.Root,
		"iterations", res.Iterations,
		"reason", res.Reason.String(),
		"duration", time.Since(start))
	if !res.Reason.Converged() {
		log.Warn("iteration cap reached before convergence", "max_iterations", cfg.MaxIterations)
	}

	if err = report.Write(cmd.OutOrStdout(), res, format, report.WithDecimals(cfg.Output.Decimals)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// newSolveCmd runs whatever method the --config file names.
func (a *app) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the problem described by --config",
		Long: `Reads the TOML problem file given with --config and runs the method it
names. Flags override values from the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfgFile == "" {
				return fmt.Errorf("solve: --config is required")
			}
			cfg, err := a.loadConfig(cmd, "")
			if err != nil {
				return err
			}
			return a.solve(cmd, cfg)
		},
	}
	addCommonFlags(cmd.Flags())
	cmd.Flags().String("derivative", "", "f'(x) for newton")
	cmd.Flags().StringP("iteration", "g", "", "g(x) for fixed-point")
	return cmd
}
