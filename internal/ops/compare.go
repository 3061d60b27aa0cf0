package ops

import (
	"math"

	"github.com/tapegrad-ml/tapegrad/internal/autograd"
)

// Piecewise-constant primitives. Registered with zero gradient: their
// adapters evaluate on unboxed values and record nothing, so they never
// appear on a tape.
var (
	greaterP = autograd.RegisterZeroGradient("greater", 2, func(args []any, _ map[string]any) any {
		return elemBinary("greater", args[0], args[1], func(x, y float64) float64 {
			if x > y {
				return 1
			}
			return 0
		})
	})
	signP = autograd.RegisterZeroGradient("sign", 1, func(args []any, _ map[string]any) any {
		return elemUnary("sign", args[0], func(x float64) float64 {
			switch {
			case x > 0:
				return 1
			case x < 0:
				return -1
			}
			return 0
		})
	})
	floorP = autograd.RegisterZeroGradient("floor", 1, func(args []any, _ map[string]any) any {
		return elemUnary("floor", args[0], math.Floor)
	})
)

// Greater returns 1 where a > b and 0 elsewhere.
func Greater(a, b any) any { return greaterP.Apply(lift(a), lift(b)) }

// Sign returns -1, 0, or 1 elementwise.
func Sign(a any) any { return signP.Apply(lift(a)) }

// Floor rounds down elementwise.
func Floor(a any) any { return floorP.Apply(lift(a)) }
