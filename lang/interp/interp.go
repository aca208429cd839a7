// Package interp implements the tree-walking evaluator: it executes a
// resolved program directly over the AST, maintaining an environment
// chain and consulting the resolver's hop table for every lexically
// scoped variable use.
//
// The Interpreter's shape — stdio facades, a call-depth guard, and
// context.Context-driven cancellation — is grounded on
// github.com/mna/nenuphar/lang/machine/thread.go's Thread, trimmed of
// everything that only makes sense for a bytecode VM (MaxSteps,
// DisableRecursion, Load/Predeclared module wiring): a tree-walker has
// no step counter to budget, and the language spec names no module
// system (§1 Non-goals).
package interp

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/value"
)

// maxCallDepth bounds nested user function calls; beyond it a call
// fails with a runtime error rather than exhausting the Go stack.
const maxCallDepth = 255

// Interpreter executes a resolved Willow program. One Interpreter may
// run many programs in sequence (the REPL reuses a single instance
// across lines), since all state — environments, globals — persists
// in exactly the way spec.md's REPL semantics require ("reusing the
// same interpreter instance").
type Interpreter struct {
	globals *value.Environment
	env     *value.Environment
	hops    map[ast.Expr]int
	diag    *diag.Diagnostics
	stdout  io.Writer

	ctx       context.Context
	callDepth int

	cancelled atomic.Bool
}

// New returns an Interpreter with a fresh global environment seeded
// with the `clock` builtin (§4.4 and §6). stdout defaults to
// os.Stdout when nil.
func New(d *diag.Diagnostics, stdout io.Writer) *Interpreter {
	if stdout == nil {
		stdout = os.Stdout
	}
	globals := value.NewEnvironment(nil)
	it := &Interpreter{globals: globals, env: globals, diag: d, stdout: stdout}
	globals.Define("clock", &value.NativeFunction{
		FnName: "clock",
		Arty:   0,
		Fn: func([]value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
	return it
}

// Interpret executes every top-level statement in prog in order, using
// hops for every lexically-scoped variable reference resolved by
// lang/resolver. Per §4.4/§7, the first runtime error (including an
// escape left uncaught at the top level) is reported to the
// diagnostics collaborator and execution of this call stops; earlier
// statements' side effects are not undone.
func (it *Interpreter) Interpret(ctx context.Context, prog []ast.Stmt, hops map[ast.Expr]int) {
	// merge rather than replace: functions defined by an earlier call
	// still need the hop entries recorded for their bodies.
	if it.hops == nil {
		it.hops = make(map[ast.Expr]int, len(hops))
	}
	for e, h := range hops {
		it.hops[e] = h
	}
	it.ctx = ctx

	for _, stmt := range prog {
		if err := it.execStmt(stmt); err != nil {
			it.reportEscapeOrError(stmt.Line(), err)
			return
		}
	}
}

// reportEscapeOrError converts an uncaught control escape into the
// top-level runtime error message §5's escape table names, and
// reports any other error as-is.
func (it *Interpreter) reportEscapeOrError(line int, err error) {
	switch e := err.(type) {
	case returnEscape:
		it.diag.RuntimeError(line, "Return statement at the top level.")
	case breakEscape, continueEscape:
		it.diag.RuntimeError(line, "Break/Continue at the function level.")
	case *runtimeError:
		it.diag.RuntimeError(e.line, "%s", e.Error())
	default:
		it.diag.RuntimeError(line, "%s", err.Error())
	}
}

// CallFunction implements value.Caller: it executes fn's body with
// args bound to its declared parameters in a fresh environment
// enclosed by fn's captured closure, honoring a returnEscape and the
// §4.6 rule that invoking a class's "init" always yields the
// instance, never whatever init itself returns.
func (it *Interpreter) CallFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	if it.callDepth >= maxCallDepth {
		return nil, newRuntimeError(fn.Declaration.Line(), "Stack overflow.")
	}
	it.callDepth++
	defer func() { it.callDepth-- }()

	callEnv := value.NewEnvironment(fn.Closure)
	for i, param := range fn.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	previous := it.env
	it.env = callEnv
	defer func() { it.env = previous }()

	err := it.execStmts(fn.Declaration.Body)
	if ret, ok := err.(returnEscape); ok {
		if fn.IsInitializer {
			// the constructed instance, not the returned value, is
			// what a class call yields (§4.4); bind(this) put "this" one
			// hop out of the parameter scope.
			this, _ := fn.Closure.Get("this")
			return this, nil
		}
		return ret.value, nil
	}
	switch err.(type) {
	case breakEscape, continueEscape:
		// a loop escape must never cross a function-call boundary (§5);
		// converted here so the caller's own enclosing loop, if any,
		// never mistakes it for one of its own.
		return nil, newRuntimeError(fn.Declaration.Line(), "Break/Continue at the function level.")
	}
	if err != nil {
		return nil, err
	}
	if fn.IsInitializer {
		this, _ := fn.Closure.Get("this")
		return this, nil
	}
	return value.Nil, nil
}

// checkCancelled reports whether ctx has been cancelled, the one seam
// through which a long-running (or infinite) while loop can be
// stopped from outside the interpreter.
func (it *Interpreter) checkCancelled() error {
	if it.ctx == nil {
		return nil
	}
	select {
	case <-it.ctx.Done():
		it.cancelled.Store(true)
		return fmt.Errorf("interpreter cancelled: %w", it.ctx.Err())
	default:
		return nil
	}
}
