package report_test

import (
	"fmt"

	"github.com/katalvlaran/lvroot/core"
	"github.com/katalvlaran/lvroot/report"
	"github.com/katalvlaran/lvroot/secant"
)

// ExampleSummary prints a compact outcome line.
func ExampleSummary() {
	f := func(x float64) float64 { return 2*x*x*x + 8*x*x - 3*x + 12 }
	res, err := secant.Solve(f, -5, -4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(report.Summary(res, report.WithDecimals(6)))
	// Output:
	// secant: root=-4.608076 iterations=7 reason=converged-by-step-size
}

// ExampleRows shows the secant columns for the two seeds.
func ExampleRows() {
	f := func(x float64) float64 { return 2*x*x*x + 8*x*x - 3*x + 12 }
	res, _ := secant.Solve(f, -5, -4, core.WithMaxIterations(1))
	fmt.Println(report.Columns(res.Method))
	for _, row := range report.Rows(res, report.WithDecimals(2)) {
		fmt.Println(row)
	}
	// Output:
	// [k x_k f(x_k)]
	// [0 -5.00 -23.00]
	// [1 -4.00 24.00]
	// [2 -4.51 4.75]
}
