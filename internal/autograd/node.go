package autograd

// Node is one computation-graph vertex: the box it represents, one parent
// slot per positional argument of the producing call (nil when that argument
// was not boxed on this tape), and the gradient contributions pushed to it
// during a backward pass. A node belongs to exactly one tape; the same box
// gets a separate node on every tape it is a member of.
type Node struct {
	box     *Box
	parents []*Node
	ingrads []any
}
