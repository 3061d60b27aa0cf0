// Copyright 2025 The Tapegrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autograd provides tape-based reverse-mode automatic
// differentiation for plain Go values.
//
// The engine records the primitive operations executed during a forward
// evaluation on a tape and replays them backward to compute exact gradients.
// Differentiability is retrofitted onto ordinary host code: the function
// under differentiation needs no symbolic derivatives, only calls into
// registered primitives (see the ops package).
//
// Example:
//
//	import (
//	    "github.com/tapegrad-ml/tapegrad/autograd"
//	    "github.com/tapegrad-ml/tapegrad/ops"
//	)
//
//	func main() {
//	    f := func(args ...any) any {
//	        x := args[0]
//	        return ops.Sum(ops.Mul(x, x))
//	    }
//	    grad, _ := autograd.Grad(f)([]float64{1, 2, 3})
//	    // grad = []float64{2, 4, 6}
//	}
//
// Nested differentiation works by passing a gradient-computing function back
// into Grad; see the hessian example.
package autograd

import (
	"github.com/tapegrad-ml/tapegrad/internal/autograd"
)

// Box marks a value as differentiable: it wraps a host payload together with
// the tape memberships that let primitive calls record themselves.
type Box = autograd.Box

// Tape is the creation-ordered, append-only record of the nodes produced
// during one differentiation call.
type Tape = autograd.Tape

// Primitive is a registered differentiable operation together with its
// recording adapter.
type Primitive = autograd.Primitive

// Registry caches one adapter per primitive, keyed by an identity-stable
// name.
type Registry = autograd.Registry

// Fn is a function traced by the engine.
type Fn = autograd.Fn

// Forward computes a primitive on plain (unboxed) values.
type Forward = autograd.Forward

// GradFunc computes the gradient of a primitive for one argument position.
type GradFunc = autograd.GradFunc

// Engine errors. See the internal package documentation for semantics.
var (
	ErrNonScalarOutput   = autograd.ErrNonScalarOutput
	ErrInconsistentGraph = autograd.ErrInconsistentGraph
	ErrGradTypeMismatch  = autograd.ErrGradTypeMismatch
	ErrClosedTape        = autograd.ErrClosedTape
)

// Trace runs fn with the argument at position argnum boxed on a fresh tape
// and returns the seed, the raw result, and the tape.
func Trace(fn Fn, argnum int, args ...any) (*Box, any, *Tape, error) {
	return autograd.Trace(fn, argnum, args...)
}

// Backprop computes the gradient of result with respect to seed by draining
// tape in reverse creation order.
func Backprop(seed *Box, result any, tape *Tape) (any, error) {
	return autograd.Backprop(seed, result, tape)
}

// Grad returns a function computing the gradient of scalar-valued fn with
// respect to its first argument.
//
// Example:
//
//	df := autograd.Grad(f)
//	g, err := df(3.0)
func Grad(fn Fn) func(args ...any) (any, error) {
	return autograd.Grad(fn)
}

// GradArg is Grad with respect to the argnum-th argument.
func GradArg(fn Fn, argnum int) func(args ...any) (any, error) {
	return autograd.GradArg(fn, argnum)
}

// Gradient returns the gradient stored on a seed by a completed backward
// pass; nil means the output did not depend on that input.
func Gradient(x any) any {
	return autograd.Gradient(x)
}

// Value unboxes x, recursively if x is itself a result of differentiation.
func Value(x any) any {
	return autograd.Value(x)
}

// Unbox returns the payload of a boxed value, or x unchanged.
func Unbox(x any) any {
	return autograd.Unbox(x)
}

// NewRegistry creates an empty primitive registry.
func NewRegistry() *Registry {
	return autograd.NewRegistry()
}

// Default returns the process-wide registry used by the package-level
// registration functions.
func Default() *Registry {
	return autograd.Default()
}

// Register installs a primitive in the default registry.
func Register(name string, arity int, fw Forward) *Primitive {
	return autograd.Register(name, arity, fw)
}

// RegisterGradient installs the gradient function for one argument position
// of a registered primitive.
func RegisterGradient(name string, pos int, g GradFunc) {
	autograd.RegisterGradient(name, pos, g)
}

// RegisterZeroGradient installs a primitive that contributes no gradient and
// is never recorded.
func RegisterZeroGradient(name string, arity int, fw Forward) *Primitive {
	return autograd.RegisterZeroGradient(name, arity, fw)
}

// Lookup returns the adapter registered under name in the default registry.
func Lookup(name string) (*Primitive, bool) {
	return autograd.Lookup(name)
}
