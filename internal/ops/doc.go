// Package ops registers the differentiable primitive operations consumed by
// the autograd engine and exposes boxed-aware wrappers over them.
//
// Each primitive supplies a forward implementation over plain float64
// scalars and slices plus one gradient function per differentiable argument
// position:
//   - Add, Sub: d(a±b)/da = 1, d(a±b)/db = ±1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Div: d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//   - Pow: d(a^n)/da = n*a^(n-1), d(a^n)/dn = a^n * ln(a)
//   - Exp, Log, Sqrt, Sin, Cos, Tanh, Abs: the usual elementwise rules
//   - Sum, Dot, Prod, Fill: reductions and their spreads
//   - Greater, Sign, Floor: piecewise-constant, registered with zero gradient
//
// Gradient functions are written in terms of other ops, never raw float
// loops, so that gradient math performed during an inner backward pass keeps
// recording on still-open outer tapes and higher-order differentiation
// composes.
package ops
