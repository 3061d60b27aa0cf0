package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapegrad-ml/tapegrad/internal/autograd"
	"github.com/tapegrad-ml/tapegrad/internal/ops"
)

func TestForward_Arithmetic(t *testing.T) {
	assert.Equal(t, 5.0, ops.Add(2.0, 3.0))
	assert.Equal(t, -1.0, ops.Sub(2.0, 3.0))
	assert.Equal(t, 6.0, ops.Mul(2.0, 3.0))
	assert.Equal(t, 2.0, ops.Div(6.0, 3.0))
	assert.Equal(t, -2.0, ops.Neg(2.0))
	assert.Equal(t, 8.0, ops.Pow(2.0, 3.0))

	assert.Equal(t, []float64{5, 7}, ops.Add([]float64{1, 2}, []float64{4, 5}))
	assert.Equal(t, []float64{4, 10}, ops.Mul([]float64{1, 2}, []float64{4, 5}))
	assert.Equal(t, []float64{3, 4}, ops.Add([]float64{1, 2}, 2.0))
	assert.Equal(t, []float64{2, 4}, ops.Mul(2.0, []float64{1, 2}))
}

func TestForward_LiftsIntegers(t *testing.T) {
	assert.Equal(t, 5.0, ops.Add(2, 3))
	assert.Equal(t, 9.0, ops.Pow(3, 2))
}

func TestForward_Reductions(t *testing.T) {
	assert.Equal(t, 6.0, ops.Sum([]float64{1, 2, 3}))
	assert.Equal(t, 3.0, ops.Sum(3.0))
	assert.Equal(t, 32.0, ops.Dot([]float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.Equal(t, 24.0, ops.Prod([]float64{2, 3, 4}))
	assert.Equal(t, []float64{2, 2, 2}, ops.Fill(2.0, 3))
}

func TestForward_PiecewiseConstant(t *testing.T) {
	assert.Equal(t, 1.0, ops.Greater(2.0, 1.0))
	assert.Equal(t, 0.0, ops.Greater(1.0, 2.0))
	assert.Equal(t, []float64{1, 0, -1}, ops.Sign([]float64{3, 0, -2}))
	assert.Equal(t, 1.0, ops.Floor(1.9))
}

func TestGradients_BinaryPartials(t *testing.T) {
	cases := []struct {
		name   string
		fn     func(a, b any) any
		a, b   float64
		ga, gb float64
	}{
		{"add", ops.Add, 3, 5, 1, 1},
		{"sub", ops.Sub, 3, 5, 1, -1},
		{"mul", ops.Mul, 3, 5, 5, 3},
		{"div", ops.Div, 3, 5, 1.0 / 5, -3.0 / 25},
		{"pow", ops.Pow, 3, 2, 6, 9 * math.Log(3)},
		{"dot-scalarized", func(a, b any) any { return ops.Mul(a, b) }, 2, 7, 7, 2},
	}
	for _, c := range cases {
		f := func(args ...any) any { return c.fn(args[0], args[1]) }

		ga, err := autograd.GradArg(f, 0)(c.a, c.b)
		require.NoError(t, err, c.name)
		assert.InDelta(t, c.ga, ga.(float64), 1e-9, "%s d/da", c.name)

		gb, err := autograd.GradArg(f, 1)(c.a, c.b)
		require.NoError(t, err, c.name)
		assert.InDelta(t, c.gb, gb.(float64), 1e-9, "%s d/db", c.name)
	}
}

func TestGradients_Unary(t *testing.T) {
	cases := []struct {
		name  string
		fn    func(a any) any
		plain func(x float64) float64
		x     float64
	}{
		{"neg", ops.Neg, func(x float64) float64 { return -x }, 1.3},
		{"exp", ops.Exp, math.Exp, 0.8},
		{"log", ops.Log, math.Log, 2.5},
		{"sqrt", ops.Sqrt, math.Sqrt, 4.0},
		{"sin", ops.Sin, math.Sin, 1.1},
		{"cos", ops.Cos, math.Cos, 1.1},
		{"tanh", ops.Tanh, math.Tanh, 0.4},
		{"abs", ops.Abs, math.Abs, -2.3},
	}
	const eps = 1e-6
	for _, c := range cases {
		f := func(args ...any) any { return c.fn(args[0]) }
		g, err := autograd.Grad(f)(c.x)
		require.NoError(t, err, c.name)
		want := (c.plain(c.x+eps) - c.plain(c.x-eps)) / (2 * eps)
		assert.InDelta(t, want, g.(float64), 1e-4, c.name)
	}
}

func TestGradients_SumSpreads(t *testing.T) {
	f := func(args ...any) any { return ops.Sum(args[0]) }
	g, err := autograd.Grad(f)([]float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, g)
}

func TestGradients_Dot(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	f := func(args ...any) any { return ops.Dot(args[0], b) }
	g, err := autograd.Grad(f)(a)
	require.NoError(t, err)
	assert.Equal(t, b, g)

	f2 := func(args ...any) any { return ops.Dot(a, args[0]) }
	g2, err := autograd.GradArg(f2, 0)(b)
	require.NoError(t, err)
	assert.Equal(t, a, g2)
}

func TestGradients_Prod(t *testing.T) {
	f := func(args ...any) any { return ops.Prod(args[0]) }
	g, err := autograd.Grad(f)([]float64{2, 3, 4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{12, 8, 6}, g.([]float64), 1e-9)
}

func TestGradients_Fill(t *testing.T) {
	// f(x) = sum(fill(x, 4) * w) = x * sum(w).
	w := []float64{1, 2, 3, 4}
	f := func(args ...any) any {
		return ops.Sum(ops.Mul(ops.Fill(args[0], 4), w))
	}
	g, err := autograd.Grad(f)(2.0)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, g.(float64), 1e-9)
}

func TestGradients_BroadcastReducesToScalar(t *testing.T) {
	// f(s) = sum(s * v): d/ds = sum(v).
	v := []float64{1, 2, 3}
	f := func(args ...any) any { return ops.Sum(ops.Mul(args[0], v)) }
	g, err := autograd.Grad(f)(2.0)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, g.(float64), 1e-9)
}

func TestZeroGradient_NotRecorded(t *testing.T) {
	f := func(args ...any) any {
		x := args[0]
		// The comparison must come back plain even with a boxed input.
		mask := ops.Greater(x, 0.0)
		if _, ok := mask.(*autograd.Box); ok {
			t.Error("zero-gradient result must not be boxed")
		}
		return ops.Sum(ops.Mul(mask, ops.Mul(x, x)))
	}
	// f(x) = sum(1{x>0} · x²): gradient is 2x where x > 0, else 0.
	g, err := autograd.Grad(f)([]float64{-1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4, 6}, g)
}

func TestRegistry_LookupFindsRegisteredOps(t *testing.T) {
	for _, name := range []string{"add", "mul", "exp", "sum", "dot", "sign"} {
		p, ok := autograd.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, p.Name())
	}
}
