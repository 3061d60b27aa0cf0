package autograd

// Primitives the engine itself depends on. They live outside any registry;
// the engine owns them directly.

// identity passes a value through unchanged. The forward-pass merge records
// it so a traced argument can join a fresh tape while keeping its links to
// still-open outer tapes. Its gradient passes the incoming gradient through
// on whichever tape is being drained.
var identity = &Primitive{
	name: "identity",
	forward: func(args []any, _ map[string]any) any {
		return args[0]
	},
	grads: []GradFunc{
		func(outgrad, _ any, _ []any, _ map[string]any) any { return outgrad },
	},
}

// gradAdd merges two gradient contributions during accumulation. Both slots
// pass the incoming gradient through unchanged, which is what keeps
// accumulation itself differentiable on outer tapes.
//
// Assigned in init: the forward closure calls rawAdd, which reaches back to
// gradAdd through addGrads, and a package-level initializer may not depend
// on itself.
var gradAdd *Primitive

func init() {
	gradAdd = &Primitive{
		name: "grad+",
		forward: func(args []any, _ map[string]any) any {
			v, err := rawAdd(args[0], args[1])
			if err != nil {
				// Unreachable: addGrads checks structure before applying.
				panic(err)
			}
			return v
		},
		grads: []GradFunc{
			func(outgrad, _ any, _ []any, _ map[string]any) any { return outgrad },
			func(outgrad, _ any, _ []any, _ map[string]any) any { return outgrad },
		},
	}
}
