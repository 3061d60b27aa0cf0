package autograd

import "sync"

// Forward computes a primitive on plain (unboxed) values.
type Forward func(args []any, kwargs map[string]any) any

// GradFunc computes the gradient of a primitive with respect to one argument
// position. It receives the accumulated output gradient, the unboxed output
// value, and the original (possibly boxed) argument list of the recorded
// call, and returns the gradient to push to that argument's node.
//
// Gradient math should itself go through primitives: arguments may be boxed
// on still-open outer tapes, and recording there is what keeps nested
// differentiation composable.
type GradFunc func(outgrad, output any, args []any, kwargs map[string]any) any

// Primitive is a registered differentiable operation together with its
// recording adapter. One instance exists per operation; obtain it from a
// Registry rather than constructing it per call.
type Primitive struct {
	name    string
	forward Forward
	grads   []GradFunc
	zero    bool
}

// Name returns the identity-stable handle the primitive was registered under.
func (p *Primitive) Name() string { return p.name }

// Apply evaluates the primitive on args, recording the result on every open
// tape that a boxed argument belongs to. The returned value is boxed on
// exactly those tapes; with no boxed arguments on open tapes it is plain.
func (p *Primitive) Apply(args ...any) any {
	return p.ApplyKw(nil, args...)
}

// ApplyKw is Apply with keyword options. The options are stored with the
// recorded call and passed through to gradient functions unchanged.
func (p *Primitive) ApplyKw(kwargs map[string]any, args ...any) any {
	raw := make([]any, len(args))
	boxed := false
	for i, a := range args {
		raw[i] = Unbox(a)
		if isBoxed(a) {
			boxed = true
		}
	}
	result := p.forward(raw, kwargs)
	if p.zero || !boxed {
		return result
	}

	var out *Box
	for i, a := range args {
		ab, ok := a.(*Box)
		if !ok {
			continue
		}
		for _, m := range ab.memberships {
			if m.tape.closed {
				continue
			}
			if out == nil {
				out = &Box{
					payload: result,
					origin: &origin{
						prim:   p,
						args:   append([]any(nil), args...),
						kwargs: kwargs,
					},
				}
			}
			n := out.nodeOn(m.tape)
			if n == nil {
				n = out.boxOn(m.tape, len(args))
				if n == nil {
					continue
				}
			}
			n.parents[i] = m.node
		}
	}
	if out == nil {
		// Every boxed argument belonged only to closed tapes.
		return result
	}
	return out
}

// Registry caches one adapter per primitive, keyed by name. Entries are
// inserted once and looked up many times; concurrent use only contends on
// first registration.
type Registry struct {
	mu    sync.RWMutex
	prims map[string]*Primitive
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{prims: make(map[string]*Primitive)}
}

// Register installs a primitive with the given name, positional arity, and
// forward function, and returns its adapter. Registering a name that already
// exists returns the original entry unchanged.
func (r *Registry) Register(name string, arity int, fw Forward) *Primitive {
	return r.register(name, arity, fw, false)
}

// RegisterZeroGradient installs a primitive whose output never carries a
// gradient (piecewise-constant or non-numeric). Its adapter evaluates on
// unboxed values and records nothing.
func (r *Registry) RegisterZeroGradient(name string, arity int, fw Forward) *Primitive {
	return r.register(name, arity, fw, true)
}

func (r *Registry) register(name string, arity int, fw Forward, zero bool) *Primitive {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.prims[name]; ok {
		return p
	}
	p := &Primitive{name: name, forward: fw, grads: make([]GradFunc, arity), zero: zero}
	r.prims[name] = p
	return p
}

// RegisterGradient installs the gradient function for one argument position
// of a registered primitive. Registration is a startup-time concern, so an
// unknown name or out-of-range position panics.
func (r *Registry) RegisterGradient(name string, pos int, g GradFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prims[name]
	if !ok {
		panic("autograd: RegisterGradient on unregistered primitive " + name)
	}
	if pos < 0 || pos >= len(p.grads) {
		panic("autograd: gradient position out of range for " + name)
	}
	p.grads[pos] = g
}

// Lookup returns the adapter registered under name.
func (r *Registry) Lookup(name string) (*Primitive, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prims[name]
	return p, ok
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// registration functions.
func Default() *Registry { return defaultRegistry }

// Register installs a primitive in the default registry.
func Register(name string, arity int, fw Forward) *Primitive {
	return defaultRegistry.Register(name, arity, fw)
}

// RegisterGradient installs a gradient function in the default registry.
func RegisterGradient(name string, pos int, g GradFunc) {
	defaultRegistry.RegisterGradient(name, pos, g)
}

// RegisterZeroGradient installs a zero-gradient primitive in the default
// registry.
func RegisterZeroGradient(name string, arity int, fw Forward) *Primitive {
	return defaultRegistry.RegisterZeroGradient(name, arity, fw)
}

// Lookup returns the adapter registered under name in the default registry.
func Lookup(name string) (*Primitive, bool) { return defaultRegistry.Lookup(name) }
