package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroot/core"
)

// methodCmd wires a subcommand that solves with m.
func (a *app) methodCmd(m core.Method, short, long string, flags func(cmd *cobra.Command)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   m.String(),
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd, m.String())
			if err != nil {
				return err
			}
			return a.solve(cmd, cfg)
		},
	}
	addCommonFlags(cmd.Flags())
	flags(cmd)
	return cmd
}

func bracketFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("a", 0, "left end of the bracket")
	cmd.Flags().Float64("b", 0, "right end of the bracket")
	cmd.Flags().Bool("scan", false, "locate the bracket by scanning [-100, 100]")
}

func (a *app) newBisectionCmd() *cobra.Command {
	return a.methodCmd(core.Bisection,
		"Bisection on a sign-changing bracket",
		`Halves [a, b] until its width is at most the tolerance. The number of
steps is ceil(log2((b-a)/tolerance)).

  lvroot bisection -f "0.75*x^3 + 2*x^2 + x - 9" --a 1 --b 2 -t 1e-3
  lvroot bisection -f "x - 2" --scan`,
		bracketFlags)
}

func (a *app) newRegulaFalsiCmd() *cobra.Command {
	return a.methodCmd(core.RegulaFalsi,
		"False position (regula falsi) on a sign-changing bracket",
		`Replaces one bracket end by the x-intercept of the chord through
(a, f(a)) and (b, f(b)).

  lvroot regula-falsi -f "log(x + 2) + sin(x + 1)" --a -1.5 --b 0 -t 1e-3`,
		bracketFlags)
}

func (a *app) newSecantCmd() *cobra.Command {
	return a.methodCmd(core.Secant,
		"Secant iteration from two starting points",
		`x_{k+1} = x_k - f(x_k)(x_k - x_{k-1}) / (f(x_k) - f(x_{k-1})).

  lvroot secant -f "2*x^3 + 8*x^2 - 3*x + 12" --x0 -5 --x1 -4`,
		func(cmd *cobra.Command) {
			cmd.Flags().Float64("x0", 0, "first starting point")
			cmd.Flags().Float64("x1", 0, "second starting point")
		})
}

func (a *app) newNewtonCmd() *cobra.Command {
	return a.methodCmd(core.Newton,
		"Newton-Raphson with an explicit derivative",
		`x_{n+1} = x_n - f(x_n) / f'(x_n).

  lvroot newton -f "x*x - 2" --derivative "2*x" --x0 1`,
		func(cmd *cobra.Command) {
			cmd.Flags().StringP("derivative", "d", "", "f'(x) as an expression in x")
			cmd.Flags().Float64("x0", 0, "starting point")
		})
}

func (a *app) newFixedPointCmd() *cobra.Command {
	return a.methodCmd(core.FixedPoint,
		"Picard (fixed-point) iteration x = g(x)",
		`Iterates x_{n+1} = g(x_n). --function is optional and only used for the
residual column and residual stopping.

  lvroot fixed-point -g "-4 + (3*x - 12)/(2*x^2)" -f "2*x^3 + 8*x^2 - 3*x + 12" --x0 -4`,
		func(cmd *cobra.Command) {
			cmd.Flags().StringP("iteration", "g", "", "g(x) as an expression in x")
			cmd.Flags().Float64("x0", 0, "starting point")
		})
}
