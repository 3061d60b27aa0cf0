package ops

import (
	"fmt"

	"github.com/tapegrad-ml/tapegrad/internal/autograd"
)

// elemBinary applies op elementwise over float64 scalars and slices,
// broadcasting a scalar against a slice. Operand shapes are fixed by the
// forward computation, so a mismatch here is a programmer error and panics.
func elemBinary(name string, a, b any, op func(x, y float64) float64) any {
	switch x := a.(type) {
	case float64:
		switch y := b.(type) {
		case float64:
			return op(x, y)
		case []float64:
			out := make([]float64, len(y))
			for i, e := range y {
				out[i] = op(x, e)
			}
			return out
		}
	case []float64:
		switch y := b.(type) {
		case float64:
			out := make([]float64, len(x))
			for i, e := range x {
				out[i] = op(e, y)
			}
			return out
		case []float64:
			if len(x) != len(y) {
				panic(fmt.Sprintf("ops: %s: length mismatch %d vs %d", name, len(x), len(y)))
			}
			out := make([]float64, len(x))
			for i, e := range x {
				out[i] = op(e, y[i])
			}
			return out
		}
	}
	panic(fmt.Sprintf("ops: %s: unsupported operands %T and %T", name, a, b))
}

// binaryVia is elemBinary with a gonum kernel for the equal-length slice
// case.
func binaryVia(name string, a, b any, kernel func(dst, s []float64), op func(x, y float64) float64) any {
	if x, ok := a.([]float64); ok {
		if y, ok := b.([]float64); ok {
			if len(x) != len(y) {
				panic(fmt.Sprintf("ops: %s: length mismatch %d vs %d", name, len(x), len(y)))
			}
			out := make([]float64, len(x))
			copy(out, x)
			kernel(out, y)
			return out
		}
	}
	return elemBinary(name, a, b, op)
}

// elemUnary applies op elementwise over a float64 scalar or slice.
func elemUnary(name string, a any, op func(x float64) float64) any {
	switch x := a.(type) {
	case float64:
		return op(x)
	case []float64:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = op(e)
		}
		return out
	}
	panic(fmt.Sprintf("ops: %s: unsupported operand %T", name, a))
}

// unbroadcast reduces a gradient down to the shape of the argument it
// belongs to. When a scalar was broadcast against a slice in the forward
// pass the incoming gradient is a slice and must be summed back to a scalar.
func unbroadcast(g, arg any) any {
	if _, ok := autograd.Value(arg).(float64); !ok {
		return g
	}
	if _, ok := autograd.Value(g).([]float64); ok {
		return Sum(g)
	}
	return g
}

// lift converts plain integer operands to their float64 form so callers can
// mix numeric literals with boxed values. Boxed values pass through.
func lift(x any) any {
	switch v := x.(type) {
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case []int:
		out := make([]float64, len(v))
		for i, e := range v {
			out[i] = float64(e)
		}
		return out
	}
	return x
}
