// Package cli implements the lvroot command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// app carries the state shared by all subcommands of one command tree.
type app struct {
	cfgFile string
	verbose bool
	logger  *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.Default()}

	root := &cobra.Command{
		Use:   "lvroot",
		Short: "Find roots of real functions of one variable",
		Long: `lvroot solves f(x) = 0 with classical iterative methods and prints the
full convergence history.

Methods:
  bisection     - halve a sign-changing bracket
  regula-falsi  - false position inside a bracket
  secant        - two-point secant iteration
  newton        - Newton-Raphson with an explicit derivative
  fixed-point   - Picard iteration x = g(x)

Functions are expressions in x, e.g. "log(x + 2) + sin(x + 1)".`,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			a.logger = slog.New(handler).With("component", "cli")
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "problem file (TOML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every iteration")

	root.AddCommand(
		a.newSolveCmd(),
		a.newBisectionCmd(),
		a.newRegulaFalsiCmd(),
		a.newSecantCmd(),
		a.newNewtonCmd(),
		a.newFixedPointCmd(),
		a.newScanCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
