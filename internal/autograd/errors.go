package autograd

import "errors"

// Error values returned by the engine. All are fatal for the current
// differentiation call: there are no partial gradients and no retry. An
// output that simply does not depend on the traced input is reported as a
// zero or nil gradient, never as an error.
var (
	// ErrNonScalarOutput is returned by Backprop when the differentiated
	// function produced something other than a numeric scalar.
	ErrNonScalarOutput = errors.New("autograd: differentiated function must be scalar-valued")

	// ErrInconsistentGraph is returned when the root node received no
	// gradient after a full reverse traversal even though the output was
	// recorded on the tape. It indicates a bug in an adapter or gradient
	// function, not a user error.
	ErrInconsistentGraph = errors.New("autograd: root received no gradient after reverse traversal")

	// ErrGradTypeMismatch is returned when gradient contributions arriving
	// at one node are structurally incompatible, which indicates a gradient
	// function returning the wrong shape.
	ErrGradTypeMismatch = errors.New("autograd: gradient contributions are structurally incompatible")

	// ErrClosedTape is returned on an attempt to append to a closed tape.
	ErrClosedTape = errors.New("autograd: tape is closed")
)
