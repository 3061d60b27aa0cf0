package autograd

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// accumulate merges the gradient contributions collected at one node into a
// single value. Nil contributions are discarded; no live contributions yield
// nil and a single live contribution is returned unchanged, without
// allocation.
func accumulate(contribs []any) (any, error) {
	var acc any
	for _, c := range contribs {
		if c == nil {
			continue
		}
		if acc == nil {
			acc = c
			continue
		}
		var err error
		acc, err = addGrads(acc, c)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// addGrads adds two gradient values. When either side is boxed the sum goes
// through the grad+ primitive so the addition is recorded on any still-open
// tapes the operands belong to.
func addGrads(a, b any) (any, error) {
	if isBoxed(a) || isBoxed(b) {
		if err := checkAddable(Value(a), Value(b)); err != nil {
			return nil, err
		}
		return gradAdd.Apply(a, b), nil
	}
	return rawAdd(a, b)
}

// rawAdd sums two plain gradient values by structural recursion: numeric
// scalars, equal-length float slices, tuples position by position, and
// mappings as a union of keys with absent keys treated as zero.
func rawAdd(a, b any) (any, error) {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		if !ok {
			return nil, mismatch(a, b)
		}
		return x + y, nil
	case []float64:
		y, ok := b.([]float64)
		if !ok || len(x) != len(y) {
			return nil, mismatch(a, b)
		}
		out := make([]float64, len(x))
		copy(out, x)
		floats.Add(out, y)
		return out, nil
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return nil, mismatch(a, b)
		}
		out := make([]any, len(x))
		for i := range x {
			v, err := addGrads(x[i], y[i])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok {
			return nil, mismatch(a, b)
		}
		out := make(map[string]any, len(x))
		for k, v := range x {
			out[k] = v
		}
		for k, v := range y {
			cur, ok := out[k]
			if !ok {
				out[k] = v
				continue
			}
			sum, err := addGrads(cur, v)
			if err != nil {
				return nil, err
			}
			out[k] = sum
		}
		return out, nil
	}
	return nil, mismatch(a, b)
}

// checkAddable mirrors rawAdd's structural rules without computing the sum.
// Used before routing boxed operands through the grad+ primitive, so a
// mismatch fails before anything is recorded.
func checkAddable(a, b any) error {
	switch x := a.(type) {
	case float64:
		if _, ok := b.(float64); !ok {
			return mismatch(a, b)
		}
	case []float64:
		y, ok := b.([]float64)
		if !ok || len(x) != len(y) {
			return mismatch(a, b)
		}
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return mismatch(a, b)
		}
		for i := range x {
			if err := checkAddable(Value(x[i]), Value(y[i])); err != nil {
				return err
			}
		}
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok {
			return mismatch(a, b)
		}
		// Only shared keys are summed; keys on one side pass through.
		for k, v := range x {
			w, ok := y[k]
			if !ok {
				continue
			}
			if err := checkAddable(Value(v), Value(w)); err != nil {
				return err
			}
		}
	default:
		return mismatch(a, b)
	}
	return nil
}

func mismatch(a, b any) error {
	return fmt.Errorf("%w: %T vs %T", ErrGradTypeMismatch, a, b)
}
