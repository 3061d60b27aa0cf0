package autograd

// terminator is the sentinel appended to a tape when it is closed.
var terminator = &Node{}

// Tape is the append-only, creation-ordered record of the nodes produced
// during one differentiation call. The root node for the traced input is
// always first. Once closed, appends are rejected; primitives running during
// the backward pass therefore cannot record onto the tape being consumed.
//
// A tape is created fresh by Trace, drained by Backprop, and must not be
// reused across differentiation calls.
type Tape struct {
	nodes  []*Node
	closed bool
}

// NewTape creates a new open tape.
func NewTape() *Tape {
	return &Tape{nodes: make([]*Node, 0, 64)}
}

func (t *Tape) appendNode(n *Node) error {
	if t.closed {
		return ErrClosedTape
	}
	t.nodes = append(t.nodes, n)
	return nil
}

// close marks the tape closed and appends the terminator. Closing an already
// closed tape is a no-op.
func (t *Tape) close() {
	if t.closed {
		return
	}
	t.nodes = append(t.nodes, terminator)
	t.closed = true
}

// Closed reports whether the tape has been closed by a backward pass.
func (t *Tape) Closed() bool { return t.closed }

// Len returns the number of recorded nodes, excluding the terminator.
func (t *Tape) Len() int {
	if t.closed {
		return len(t.nodes) - 1
	}
	return len(t.nodes)
}
