package ops

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tapegrad-ml/tapegrad/internal/autograd"
)

var (
	addP = autograd.Register("add", 2, func(args []any, _ map[string]any) any {
		return binaryVia("add", args[0], args[1], floats.Add, func(x, y float64) float64 { return x + y })
	})
	subP = autograd.Register("sub", 2, func(args []any, _ map[string]any) any {
		return binaryVia("sub", args[0], args[1], floats.Sub, func(x, y float64) float64 { return x - y })
	})
	mulP = autograd.Register("mul", 2, func(args []any, _ map[string]any) any {
		return binaryVia("mul", args[0], args[1], floats.Mul, func(x, y float64) float64 { return x * y })
	})
	divP = autograd.Register("div", 2, func(args []any, _ map[string]any) any {
		return binaryVia("div", args[0], args[1], floats.Div, func(x, y float64) float64 { return x / y })
	})
	negP = autograd.Register("neg", 1, func(args []any, _ map[string]any) any {
		return elemUnary("neg", args[0], func(x float64) float64 { return -x })
	})
	powP = autograd.Register("pow", 2, func(args []any, _ map[string]any) any {
		return elemBinary("pow", args[0], args[1], math.Pow)
	})
)

func init() {
	autograd.RegisterGradient("add", 0, func(g, _ any, args []any, _ map[string]any) any {
		return unbroadcast(g, args[0])
	})
	autograd.RegisterGradient("add", 1, func(g, _ any, args []any, _ map[string]any) any {
		return unbroadcast(g, args[1])
	})
	autograd.RegisterGradient("sub", 0, func(g, _ any, args []any, _ map[string]any) any {
		return unbroadcast(g, args[0])
	})
	autograd.RegisterGradient("sub", 1, func(g, _ any, args []any, _ map[string]any) any {
		return unbroadcast(Neg(g), args[1])
	})
	autograd.RegisterGradient("mul", 0, func(g, _ any, args []any, _ map[string]any) any {
		return unbroadcast(Mul(g, args[1]), args[0])
	})
	autograd.RegisterGradient("mul", 1, func(g, _ any, args []any, _ map[string]any) any {
		return unbroadcast(Mul(g, args[0]), args[1])
	})
	autograd.RegisterGradient("div", 0, func(g, _ any, args []any, _ map[string]any) any {
		return unbroadcast(Div(g, args[1]), args[0])
	})
	autograd.RegisterGradient("div", 1, func(g, _ any, args []any, _ map[string]any) any {
		// d(a/b)/db = -a/b²
		return unbroadcast(Neg(Div(Mul(g, args[0]), Mul(args[1], args[1]))), args[1])
	})
	autograd.RegisterGradient("neg", 0, func(g, _ any, _ []any, _ map[string]any) any {
		return Neg(g)
	})
	autograd.RegisterGradient("pow", 0, func(g, _ any, args []any, _ map[string]any) any {
		// d(a^n)/da = n * a^(n-1)
		return unbroadcast(Mul(Mul(g, args[1]), Pow(args[0], Sub(args[1], 1.0))), args[0])
	})
	autograd.RegisterGradient("pow", 1, func(g, _ any, args []any, _ map[string]any) any {
		// d(a^n)/dn = a^n * ln(a)
		return unbroadcast(Mul(Mul(g, Pow(args[0], args[1])), Log(args[0])), args[1])
	})
}

// Add returns a+b elementwise, recording onto any open tapes its boxed
// arguments belong to. A scalar operand broadcasts against a slice.
func Add(a, b any) any { return addP.Apply(lift(a), lift(b)) }

// Sub returns a-b elementwise.
func Sub(a, b any) any { return subP.Apply(lift(a), lift(b)) }

// Mul returns a*b elementwise.
func Mul(a, b any) any { return mulP.Apply(lift(a), lift(b)) }

// Div returns a/b elementwise.
func Div(a, b any) any { return divP.Apply(lift(a), lift(b)) }

// Neg returns -a elementwise.
func Neg(a any) any { return negP.Apply(lift(a)) }

// Pow returns a^n elementwise.
func Pow(a, n any) any { return powP.Apply(lift(a), lift(n)) }
