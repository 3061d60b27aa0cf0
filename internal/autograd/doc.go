// Package autograd implements tape-based reverse-mode automatic
// differentiation over plain Go values.
//
// Architecture:
//   - Box: wraps a host value and remembers which tapes it belongs to
//   - Tape: append-only, creation-ordered record of one differentiation call
//   - Node: graph vertex with one parent slot per argument position
//   - Primitive: a registered operation plus its recording adapter
//   - Trace/Backprop: forward trace and reverse gradient walk
//
// A box may be a member of several tapes at once. That single property is
// what makes nested (higher-order) differentiation work: an inner
// differentiation opens its own tape, the traced argument joins it while
// keeping its links to still-open outer tapes, and every primitive call
// records on all of them independently. The inner backward pass closes and
// drains only its own tape; gradient math it performs is itself recorded on
// the outer tapes and can be differentiated again.
//
// Usage:
//
//	f := func(args ...any) any {
//	    x := args[0]
//	    return ops.Sum(ops.Mul(x, x))
//	}
//	grad, err := autograd.Grad(f)([]float64{1, 2, 3})
//	// grad = []float64{2, 4, 6}
package autograd
