package value

import (
	"fmt"

	"github.com/willowlang/willow/lang/ast"
)

// Function is a user-defined function or method: the AST node it was
// declared from, plus the environment captured at closure-creation
// time (per §4.5, a closure over the defining environment, not the
// call-time one).
//
// Grounded on the Closure shape in
// github.com/mna/nenuphar/lang/machine/function.go, minus its
// bytecode proto/upvalue machinery — a tree-walker just needs the
// declaration and the captured environment.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

var _ Callable = (*Function)(nil)

func (fn *Function) String() string { return fmt.Sprintf("<fn %s>", fn.Declaration.Name.Lexeme) }
func (*Function) Type() string      { return "function" }
func (fn *Function) Arity() int     { return len(fn.Declaration.Params) }

// Name returns the function's declared name.
func (fn *Function) Name() string { return fn.Declaration.Name.Lexeme }

// Call delegates to the Caller, which actually executes the body —
// see lang/interp.Interpreter.CallFunction.
func (fn *Function) Call(c Caller, args []Value) (Value, error) {
	return c.CallFunction(fn, args)
}

// Bind returns a copy of fn whose closure is a new environment, nested
// inside fn's own closure, with "this" bound to instance — the
// mechanism behind method lookup and super calls (§4.5/§4.6).
func (fn *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(fn.Closure)
	env.Define("this", instance)
	return &Function{Declaration: fn.Declaration, Closure: env, IsInitializer: fn.IsInitializer}
}
