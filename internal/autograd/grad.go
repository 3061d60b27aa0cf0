package autograd

// GradArg returns a function computing the gradient of scalar-valued fn with
// respect to its argnum-th argument: one Trace followed by one Backprop.
func GradArg(fn Fn, argnum int) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		seed, result, tape, err := Trace(fn, argnum, args...)
		if err != nil {
			return nil, err
		}
		return Backprop(seed, result, tape)
	}
}

// Grad is GradArg with respect to the first argument.
func Grad(fn Fn) func(args ...any) (any, error) {
	return GradArg(fn, 0)
}

// Gradient returns the gradient stored on a seed by a completed backward
// pass. Nil means either that no backward pass has run for x, or that the
// output did not depend on it.
func Gradient(x any) any {
	if b, ok := x.(*Box); ok && b.hasGrad {
		return b.grad
	}
	return nil
}
