package autograd

import "fmt"

// Fn is a target function traced by the engine. Arguments and result are
// host values; any of them may be boxed during tracing.
type Fn func(args ...any) any

// Trace runs fn with the argument at position argnum boxed on a fresh tape.
// It returns the seed box representing the traced input, the raw result of
// the call, and the tape. The result is boxed only if it causally depended
// on the traced argument on this tape.
func Trace(fn Fn, argnum int, args ...any) (*Box, any, *Tape, error) {
	if argnum < 0 || argnum >= len(args) {
		return nil, nil, nil, fmt.Errorf("autograd: argnum %d out of range for %d arguments", argnum, len(args))
	}

	tape := NewTape()
	arg := args[argnum]

	// Gradients live in floating point even when the caller passed integers.
	seed := newRoot(floatNormalize(Value(arg)), tape)

	traced := any(seed)
	if prior, ok := arg.(*Box); ok {
		traced = merge(seed, prior, tape)
	}

	callArgs := make([]any, len(args))
	copy(callArgs, args)
	callArgs[argnum] = traced

	result := fn(callArgs...)
	return seed, result, tape, nil
}

// newRoot boxes payload as the designated root of t. The root node is always
// the first node on its tape.
func newRoot(payload any, t *Tape) *Box {
	b := &Box{payload: payload}
	b.boxOn(t, 0)
	return b
}

// merge builds the value substituted into the traced call when the argument
// was already boxed. The duplicate joins the fresh tape with the seed root
// as parent and every still-open pre-existing tape with the prior node as
// parent, recorded as an identity call so each tape sees a pass-through
// gradient. All open memberships are merged, so arbitrarily deep nesting
// composes.
func merge(seed, prior *Box, t *Tape) *Box {
	dup := &Box{
		payload: seed.payload,
		origin:  &origin{prim: identity, args: []any{seed}},
	}
	n := dup.boxOn(t, 1)
	n.parents[0] = seed.nodeOn(t)
	for _, m := range prior.memberships {
		if m.tape.closed {
			continue
		}
		pn := dup.boxOn(m.tape, 1)
		if pn == nil {
			continue
		}
		pn.parents[0] = m.node
	}
	return dup
}

// floatNormalize converts integer payloads to float64, recursing through
// slices, tuples, and mappings. Unrecognized types pass through unchanged.
func floatNormalize(x any) any {
	switch v := x.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case []float64:
		return v
	case []int:
		out := make([]float64, len(v))
		for i, e := range v {
			out[i] = float64(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = floatNormalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = floatNormalize(e)
		}
		return out
	}
	return x
}
