package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroot/bracket"
	"github.com/katalvlaran/lvroot/funcs"
)

func (a *app) newScanCmd() *cobra.Command {
	var (
		src          string
		lo, hi, step float64
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find a sign-changing bracket on a grid",
		Long: `Samples f on lo, lo+step, ..., hi and prints the first interval whose end
values have opposite signs.

  lvroot scan -f "0.75*x^3 + 2*x^2 + x - 9"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := funcs.Compile(src)
			if err != nil {
				return err
			}
			iv, err := bracket.Scan(f, lo, hi, step)
			if err != nil {
				return err
			}
			a.logger.Debug("bracket found", "a", iv.A, "b", iv.B, "exact", iv.Exact())
			if iv.Exact() {
				fmt.Fprintf(cmd.OutOrStdout(), "exact root at x = %g\n", iv.A)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%g, %g] f(a)=%g f(b)=%g\n", iv.A, iv.B, iv.FA, iv.FB)
			return nil
		},
	}
	cmd.Flags().StringVarP(&src, "function", "f", "", "f(x) as an expression in x")
	cmd.Flags().Float64Var(&lo, "lo", bracket.DefaultLo, "start of the scan range")
	cmd.Flags().Float64Var(&hi, "hi", bracket.DefaultHi, "end of the scan range")
	cmd.Flags().Float64Var(&step, "step", bracket.DefaultStep, "grid spacing")
	_ = cmd.MarkFlagRequired("function")
	return cmd
}
