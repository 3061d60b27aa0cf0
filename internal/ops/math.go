package ops

import (
	"math"

	"github.com/tapegrad-ml/tapegrad/internal/autograd"
)

var (
	expP = autograd.Register("exp", 1, func(args []any, _ map[string]any) any {
		return elemUnary("exp", args[0], math.Exp)
	})
	logP = autograd.Register("log", 1, func(args []any, _ map[string]any) any {
		return elemUnary("log", args[0], math.Log)
	})
	sqrtP = autograd.Register("sqrt", 1, func(args []any, _ map[string]any) any {
		return elemUnary("sqrt", args[0], math.Sqrt)
	})
	sinP = autograd.Register("sin", 1, func(args []any, _ map[string]any) any {
		return elemUnary("sin", args[0], math.Sin)
	})
	cosP = autograd.Register("cos", 1, func(args []any, _ map[string]any) any {
		return elemUnary("cos", args[0], math.Cos)
	})
	tanhP = autograd.Register("tanh", 1, func(args []any, _ map[string]any) any {
		return elemUnary("tanh", args[0], math.Tanh)
	})
	absP = autograd.Register("abs", 1, func(args []any, _ map[string]any) any {
		return elemUnary("abs", args[0], math.Abs)
	})
)

// Gradients recompute from the original argument rather than reusing the
// recorded output: the argument may be boxed on an open outer tape, and only
// boxed operands keep the chain differentiable to higher orders.
func init() {
	autograd.RegisterGradient("exp", 0, func(g, _ any, args []any, _ map[string]any) any {
		return Mul(g, Exp(args[0]))
	})
	autograd.RegisterGradient("log", 0, func(g, _ any, args []any, _ map[string]any) any {
		return Div(g, args[0])
	})
	autograd.RegisterGradient("sqrt", 0, func(g, _ any, args []any, _ map[string]any) any {
		return Div(g, Mul(2.0, Sqrt(args[0])))
	})
	autograd.RegisterGradient("sin", 0, func(g, _ any, args []any, _ map[string]any) any {
		return Mul(g, Cos(args[0]))
	})
	autograd.RegisterGradient("cos", 0, func(g, _ any, args []any, _ map[string]any) any {
		return Neg(Mul(g, Sin(args[0])))
	})
	autograd.RegisterGradient("tanh", 0, func(g, _ any, args []any, _ map[string]any) any {
		t := Tanh(args[0])
		return Mul(g, Sub(1.0, Mul(t, t)))
	})
	autograd.RegisterGradient("abs", 0, func(g, _ any, args []any, _ map[string]any) any {
		return Mul(g, Sign(args[0]))
	})
}

// Exp returns e^a elementwise.
func Exp(a any) any { return expP.Apply(lift(a)) }

// Log returns the natural logarithm elementwise.
func Log(a any) any { return logP.Apply(lift(a)) }

// Sqrt returns the square root elementwise.
func Sqrt(a any) any { return sqrtP.Apply(lift(a)) }

// Sin returns the sine elementwise.
func Sin(a any) any { return sinP.Apply(lift(a)) }

// Cos returns the cosine elementwise.
func Cos(a any) any { return cosP.Apply(lift(a)) }

// Tanh returns the hyperbolic tangent elementwise.
func Tanh(a any) any { return tanhP.Apply(lift(a)) }

// Abs returns the absolute value elementwise.
func Abs(a any) any { return absP.Apply(lift(a)) }
