package fixedpoint_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroot/core"
	"github.com/katalvlaran/lvroot/fixedpoint"
)

// ExampleSolve finds the root of 2x³ + 8x² − 3x + 12 by iterating the
// rearrangement x = −4 + (3x − 12)/(2x²).
func ExampleSolve() {
	g := func(x float64) float64 { return -4 + (3*x-12)/(2*x*x) }
	f := func(x float64) float64 { return 2*x*x*x + 8*x*x - 3*x + 12 }

	res, err := fixedpoint.Solve(g, f, -4, core.WithTolerance(1e-3))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.4f iterations=%d reason=%s\n", res.Root, res.Iterations, res.Reason)
	// Output:
	// root=-4.6080 iterations=6 reason=converged-by-step-size
}

// ExampleSolve_cosine computes the Dottie number, the fixed point of cos.
func ExampleSolve_cosine() {
	res, _ := fixedpoint.Solve(math.Cos, nil, 1)
	fmt.Printf("%.10f\n", res.Root)
	// Output:
	// 0.7390851332
}
