package ops

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tapegrad-ml/tapegrad/internal/autograd"
)

var (
	sumP = autograd.Register("sum", 1, func(args []any, _ map[string]any) any {
		switch v := args[0].(type) {
		case float64:
			return v
		case []float64:
			return floats.Sum(v)
		}
		panic(fmt.Sprintf("ops: sum: unsupported operand %T", args[0]))
	})
	dotP = autograd.Register("dot", 2, func(args []any, _ map[string]any) any {
		x, xok := args[0].([]float64)
		y, yok := args[1].([]float64)
		if !xok || !yok || len(x) != len(y) {
			panic(fmt.Sprintf("ops: dot: unsupported operands %T and %T", args[0], args[1]))
		}
		return floats.Dot(x, y)
	})
	prodP = autograd.Register("prod", 1, func(args []any, _ map[string]any) any {
		switch v := args[0].(type) {
		case float64:
			return v
		case []float64:
			out := 1.0
			for _, e := range v {
				out *= e
			}
			return out
		}
		panic(fmt.Sprintf("ops: prod: unsupported operand %T", args[0]))
	})
	fillP = autograd.Register("fill", 2, func(args []any, _ map[string]any) any {
		x, ok := args[0].(float64)
		if !ok {
			panic(fmt.Sprintf("ops: fill: unsupported value %T", args[0]))
		}
		n, ok := args[1].(int)
		if !ok {
			panic(fmt.Sprintf("ops: fill: length must be int, got %T", args[1]))
		}
		out := make([]float64, n)
		for i := range out {
			out[i] = x
		}
		return out
	})
)

func init() {
	autograd.RegisterGradient("sum", 0, func(g, _ any, args []any, _ map[string]any) any {
		if v, ok := autograd.Value(args[0]).([]float64); ok {
			return Fill(g, len(v))
		}
		return g
	})
	autograd.RegisterGradient("dot", 0, func(g, _ any, args []any, _ map[string]any) any {
		return Mul(g, args[1])
	})
	autograd.RegisterGradient("dot", 1, func(g, _ any, args []any, _ map[string]any) any {
		return Mul(g, args[0])
	})
	autograd.RegisterGradient("prod", 0, func(g, _ any, args []any, _ map[string]any) any {
		// Quotient form; inputs containing zeros are not supported.
		return Div(Mul(g, Prod(args[0])), args[0])
	})
	autograd.RegisterGradient("fill", 0, func(g, _ any, _ []any, _ map[string]any) any {
		return Sum(g)
	})
}

// Sum reduces a slice to the sum of its elements; a scalar passes through.
func Sum(a any) any { return sumP.Apply(lift(a)) }

// Dot returns the inner product of two equal-length slices.
func Dot(a, b any) any { return dotP.Apply(lift(a), lift(b)) }

// Prod reduces a slice to the product of its elements; a scalar passes
// through.
func Prod(a any) any { return prodP.Apply(lift(a)) }

// Fill spreads a scalar into a slice of length n.
func Fill(v any, n int) any { return fillP.Apply(lift(v), n) }
