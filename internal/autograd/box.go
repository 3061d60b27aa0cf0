package autograd

// Box wraps a host value so that primitive operations performed on it can be
// recorded. A box is never wrapped in another box; unboxing always yields a
// plain payload in one step.
type Box struct {
	payload     any
	origin      *origin
	memberships []membership

	// Gradient stored by a completed backward pass bound to this box as
	// seed. Retrieved with Gradient.
	grad    any
	hasGrad bool
}

// membership links a box to its node on one tape. The list is ordered by
// boxing time and searched by tape identity, never by tape contents.
type membership struct {
	tape *Tape
	node *Node
}

// origin records the primitive call that produced a box: the primitive and
// its full original (possibly boxed) argument list. A nil origin marks a
// root, the input being differentiated.
type origin struct {
	prim   *Primitive
	args   []any
	kwargs map[string]any
}

// Payload returns the wrapped host value.
func (b *Box) Payload() any { return b.payload }

// nodeOn returns the box's node on t, or nil if the box is not a member of t.
func (b *Box) nodeOn(t *Tape) *Node {
	for _, m := range b.memberships {
		if m.tape == t {
			return m.node
		}
	}
	return nil
}

// boxOn makes b a member of t with a fresh node holding one parent slot per
// argument position. Returns nil if t is closed.
func (b *Box) boxOn(t *Tape, nargs int) *Node {
	n := &Node{box: b, parents: make([]*Node, nargs)}
	if err := t.appendNode(n); err != nil {
		return nil
	}
	b.memberships = append(b.memberships, membership{tape: t, node: n})
	return n
}

// Unbox returns the payload of a boxed value, or x unchanged.
func Unbox(x any) any {
	if b, ok := x.(*Box); ok {
		return b.payload
	}
	return x
}

// Value unboxes x, recursively if x is itself a result of differentiation.
func Value(x any) any {
	for {
		b, ok := x.(*Box)
		if !ok {
			return x
		}
		x = b.payload
	}
}

func isBoxed(x any) bool {
	_, ok := x.(*Box)
	return ok
}
