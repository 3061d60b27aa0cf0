package autograd

import "fmt"

// Backprop computes the gradient of result with respect to seed by draining
// tape in strict reverse creation order. The tape is closed before any
// gradient function runs and must be discarded afterwards. The returned
// gradient is also stored on the seed for retrieval via Gradient.
//
// An unboxed result, or one that is not a member of tape, means the output
// provably did not depend on the seed; the gradient is then a zero of the
// seed's numeric shape, or nil for non-numeric seeds. That case is not an
// error.
func Backprop(seed *Box, result any, tape *Tape) (any, error) {
	rb, ok := result.(*Box)
	if !ok || rb.nodeOn(tape) == nil {
		g := zeroLike(seed.payload)
		seed.grad, seed.hasGrad = g, true
		tape.close()
		return g, nil
	}
	if _, ok := rb.payload.(float64); !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNonScalarOutput, rb.payload)
	}

	for _, n := range tape.nodes {
		n.ingrads = n.ingrads[:0]
	}
	out := rb.nodeOn(tape)
	out.ingrads = append(out.ingrads, float64(1))

	// Close before invoking any gradient function: gradient math may call
	// primitives, and those calls must not land on the tape being drained.
	tape.close()

	for i := len(tape.nodes) - 1; i >= 0; i-- {
		n := tape.nodes[i]
		if n.box == nil || n.box.origin == nil || len(n.ingrads) == 0 {
			// Terminator, root, or no path from here to the output.
			continue
		}
		g, err := accumulate(n.ingrads)
		if err != nil {
			return nil, err
		}
		org := n.box.origin
		for pos, parent := range n.parents {
			if parent == nil {
				continue
			}
			if pos >= len(org.prim.grads) || org.prim.grads[pos] == nil {
				// A recorded parent with no gradient function is a
				// registration gap, not a dead branch; failing here names
				// it instead of starving the root.
				return nil, fmt.Errorf("%w: primitive %q has no gradient for argument %d",
					ErrInconsistentGraph, org.prim.name, pos)
			}
			gf := org.prim.grads[pos]
			parent.ingrads = append(parent.ingrads, gf(g, n.box.payload, org.args, org.kwargs))
		}
	}

	root := tape.nodes[0]
	if len(root.ingrads) == 0 {
		return nil, fmt.Errorf("%w (tape of %d nodes)", ErrInconsistentGraph, tape.Len())
	}
	g, err := accumulate(root.ingrads)
	if err != nil {
		return nil, err
	}
	seed.grad, seed.hasGrad = g, true
	return g, nil
}

// zeroLike returns the additive identity matching a numeric payload, or nil
// when the payload is not a numeric scalar or array.
func zeroLike(payload any) any {
	switch v := payload.(type) {
	case float64:
		return float64(0)
	case []float64:
		return make([]float64, len(v))
	}
	return nil
}
