package value

import "github.com/dolthub/swiss"

// Environment is one lexical scope's binding table, chained to its
// enclosing scope. The resolver records, for every variable use bound
// to a non-global scope, how many Environment links to walk before
// the identifier is found — see Resolve in lang/resolver — and the
// evaluator uses GetAt/AssignAt to perform exactly that walk.
//
// The table itself is grounded on github.com/mna/nenuphar/lang/machine/map.go's
// use of github.com/dolthub/swiss; unlike the teacher, Willow has no
// need for an explicit "cell" box (see lang/machine/cell.go) to share
// a mutable binding between a closure and its defining scope: because
// every Environment lives behind a pointer and closures capture that
// pointer rather than copying values out of it, assigning through any
// holder of the pointer is already visible to every other holder.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, Value]
}

// NewEnvironment returns an environment enclosed by parent. Pass nil
// to create the global environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{enclosing: parent, values: swiss.NewMap[string, Value](8)}
}

// Define binds name to v in this scope, shadowing any binding of the
// same name in an enclosing scope. Willow allows redefining a name
// already bound in the same scope (the resolver only rejects it
// within the same block — see resolver.declare).
func (e *Environment) Define(name string, v Value) {
	e.values.Put(name, v)
}

// Get looks up name in this scope only.
func (e *Environment) Get(name string) (Value, bool) {
	return e.values.Get(name)
}

// Assign rebinds an already-defined name in this scope, reporting
// whether name was found here.
func (e *Environment) Assign(name string, v Value) bool {
	if _, ok := e.values.Get(name); !ok {
		return false
	}
	e.values.Put(name, v)
	return true
}

func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the environment depth links up the chain, per
// the resolver's hop count for the expression being evaluated.
func (e *Environment) GetAt(depth int, name string) (Value, bool) {
	return e.ancestor(depth).Get(name)
}

// AssignAt rebinds name in the environment depth links up the chain.
func (e *Environment) AssignAt(depth int, name string, v Value) bool {
	return e.ancestor(depth).Assign(name, v)
}

// GetGlobal looks up name by walking to the outermost environment. The
// evaluator calls this for any variable expression the resolver left
// out of the hop table.
func (e *Environment) GetGlobal(name string) (Value, bool) {
	env := e
	for env.enclosing != nil {
		env = env.enclosing
	}
	return env.Get(name)
}

// AssignGlobal rebinds name in the outermost environment.
func (e *Environment) AssignGlobal(name string, v Value) bool {
	env := e
	for env.enclosing != nil {
		env = env.enclosing
	}
	return env.Assign(name, v)
}
