package value

// Env is a chained environment frame: a mutable binding map plus a
// pointer to its parent frame. Frames share interior mutability — a
// *Env handed to a callee sees writes the callee makes to it.
type Env struct {
	bindings map[string]Expr
	parent   *Env
}

// NewEnv creates a new parentless (root) environment.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]Expr)}
}

// Extend creates a new child frame chained under e.
func (e *Env) Extend() *Env {
	return &Env{bindings: make(map[string]Expr), parent: e}
}

// FrameFrom creates a parentless frame seeded with bindings — the
// shape of a Lambda's captured frame, which never carries a parent of
// its own until the lambda is finally applied.
func FrameFrom(bindings map[string]Expr) *Env {
	seeded := make(map[string]Expr, len(bindings))
	for k, v := range bindings {
		seeded[k] = v
	}

	return &Env{bindings: seeded}
}

// ExtendWith creates a new child frame chained under e, seeded with the
// given bindings — used when a Lambda's captured frame is finally
// chained under its call site.
func ExtendWith(parent *Env, bindings map[string]Expr) *Env {
	seeded := make(map[string]Expr, len(bindings))
	for k, v := range bindings {
		seeded[k] = v
	}

	return &Env{bindings: seeded, parent: parent}
}

// Lookup resolves name by walking from e up through parent frames.
func (e *Env) Lookup(name string) (Expr, bool) {
	if v, ok := e.bindings[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}

	return nil, false
}

// BindLocal binds name in e's own frame, shadowing any outer binding.
func (e *Env) BindLocal(name string, v Expr) {
	e.bindings[name] = v
}

// Root walks to the parentless ancestor of e.
func (e *Env) Root() *Env {
	if e.parent == nil {
		return e
	}

	return e.parent.Root()
}

// BindGlobal binds name in e's root frame regardless of how deeply
// nested e is — the behavior नामक is built on (= uses BindLocal).
func (e *Env) BindGlobal(name string, v Expr) {
	e.Root().bindings[name] = v
}

// Parent returns e's parent frame, or nil at the root.
func (e *Env) Parent() *Env { return e.parent }

// Names returns the identifiers bound directly in e's own frame, in no
// particular order — callers that need a stable order (वातावरण) collate
// it themselves.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for k := range e.bindings {
		names = append(names, k)
	}

	return names
}

// Own returns a copy of e's own (non-inherited) bindings.
func (e *Env) Own() map[string]Expr {
	out := make(map[string]Expr, len(e.bindings))
	for k, v := range e.bindings {
		out[k] = v
	}

	return out
}

func (e *Env) String() string {
	if e == nil {
		return "वातावरण()"
	}

	names := e.Names()

	return "वातावरण(" + joinInt(len(names)) + " बाइन्डिङ)"
}

func joinInt(n int) string {
	return Number(n).String()
}

// Equals compares two environments structurally by their own bindings
// (ignoring parent chains) — used when comparing two Lambdas, whose
// captured frames never carry a parent of their own.
func (e *Env) Equals(other *Env) bool {
	if e == nil || other == nil {
		return e == other
	}
	if len(e.bindings) != len(other.bindings) {
		return false
	}
	for k, v := range e.bindings {
		ov, ok := other.bindings[k]
		if !ok || !v.Equals(ov) {
			return false
		}
	}

	return true
}
