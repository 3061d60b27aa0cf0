// Copyright 2025 The Tapegrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the differentiable primitive operations for the
// Tapegrad engine: arithmetic, elementwise math, reductions, and
// piecewise-constant helpers over float64 scalars and slices.
//
// Every function accepts plain values or boxed values from the autograd
// package interchangeably; calls with boxed arguments are recorded for the
// backward pass. Scalars broadcast against slices.
//
// Example:
//
//	f := func(args ...any) any {
//	    x := args[0]
//	    return ops.Dot(x, x)
//	}
//	grad, _ := autograd.Grad(f)([]float64{1, 2, 3}) // [2, 4, 6]
package ops

import (
	"github.com/tapegrad-ml/tapegrad/internal/ops"
)

// Arithmetic.

// Add returns a+b elementwise.
func Add(a, b any) any { return ops.Add(a, b) }

// Sub returns a-b elementwise.
func Sub(a, b any) any { return ops.Sub(a, b) }

// Mul returns a*b elementwise.
func Mul(a, b any) any { return ops.Mul(a, b) }

// Div returns a/b elementwise.
func Div(a, b any) any { return ops.Div(a, b) }

// Neg returns -a elementwise.
func Neg(a any) any { return ops.Neg(a) }

// Pow returns a^n elementwise.
func Pow(a, n any) any { return ops.Pow(a, n) }

// Elementwise math.

// Exp returns e^a elementwise.
func Exp(a any) any { return ops.Exp(a) }

// Log returns the natural logarithm elementwise.
func Log(a any) any { return ops.Log(a) }

// Sqrt returns the square root elementwise.
func Sqrt(a any) any { return ops.Sqrt(a) }

// Sin returns the sine elementwise.
func Sin(a any) any { return ops.Sin(a) }

// Cos returns the cosine elementwise.
func Cos(a any) any { return ops.Cos(a) }

// Tanh returns the hyperbolic tangent elementwise.
func Tanh(a any) any { return ops.Tanh(a) }

// Abs returns the absolute value elementwise.
func Abs(a any) any { return ops.Abs(a) }

// Reductions.

// Sum reduces a slice to the sum of its elements.
func Sum(a any) any { return ops.Sum(a) }

// Dot returns the inner product of two equal-length slices.
func Dot(a, b any) any { return ops.Dot(a, b) }

// Prod reduces a slice to the product of its elements.
func Prod(a any) any { return ops.Prod(a) }

// Fill spreads a scalar into a slice of length n.
func Fill(v any, n int) any { return ops.Fill(v, n) }

// Piecewise-constant helpers (zero gradient, never recorded).

// Greater returns 1 where a > b and 0 elsewhere.
func Greater(a, b any) any { return ops.Greater(a, b) }

// Sign returns -1, 0, or 1 elementwise.
func Sign(a any) any { return ops.Sign(a) }

// Floor rounds down elementwise.
func Floor(a any) any { return ops.Floor(a) }
