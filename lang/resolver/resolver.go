// Package resolver implements the static pass that, for every variable
// use bound to a lexical (non-global) scope, records the number of
// enclosing scopes between the use and its declaration.
//
// The scope-stack push/pop shape and the two-phase declare/define rule
// below follow github.com/mna/nenuphar/lang/resolver's block-traversal
// style, but the underlying binding model is deliberately simpler:
// the teacher resolves to local/cell/free slot indices that feed a
// register-machine compiler, where Willow's evaluator is a tree-walker
// over a linked Environment chain, so a binding only ever needs a hop
// count (§4.3 of the language spec), not a slot index.
package resolver

import (
	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/token"
)

// Resolver walks an already-parsed program and computes a hop count for
// every expression that reads or assigns a lexically-scoped binding.
type Resolver struct {
	scopes []map[string]bool // innermost scope last; "false" = declared but not yet defined
	hops   map[ast.Expr]int
	diag   *diag.Diagnostics
}

// Resolve runs the resolver over prog and returns the hop table; d
// collects any static errors produced along the way (e.g. "a local
// variable cannot be read in its own initializer").
func Resolve(prog []ast.Stmt, d *diag.Diagnostics) map[ast.Expr]int {
	r := &Resolver{hops: make(map[ast.Expr]int), diag: d}
	r.resolveStmts(prog)
	return r.hops
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return // globals are not tracked
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.diag.ErrorAtToken(name, "Variable redefined in local scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal scans the scope stack top-down; on the first hit it
// records the hop distance from the top of the stack on expr. A miss
// leaves no entry, which the evaluator treats as a global lookup.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.hops[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.VarStmt:
		// declare before resolving the initializer: a self-reference like
		// `var a = a;` then hits the declared-but-not-defined check in the
		// VariableExpr case below, reported exactly once.
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s)

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.ReturnStmt:
		// spec §9 open question: the source's static checker does not
		// flag `return` outside a function (the evaluator reports it at
		// runtime) or a value returned from `init` (the evaluator
		// discards that value and yields the instance, with no error).
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}

	case *ast.BreakStmt, *ast.ContinueStmt:
		// spec §9 open question: loose checking, deferred to runtime.
	}
}

// resolveFunction pushes a new scope, binds each parameter, resolves
// the body, and pops — the same shape the teacher's resolver uses for
// function bodies, minus the slot-index bookkeeping.
func (r *Resolver) resolveFunction(fn *ast.FunctionStmt) {
	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

// resolveClass implements §4.3's paired scope pushes: an outer scope
// binding `super` (only if there is a superclass), then an inner scope
// binding `this`, so that hop(super) = hop(this) + 1 inside every
// method body.
func (r *Resolver) resolveClass(cls *ast.ClassStmt) {
	r.declare(cls.Name)
	r.define(cls.Name)

	if cls.Superclass != nil {
		if cls.Superclass.Name.Lexeme == cls.Name.Lexeme {
			r.diag.ErrorAtToken(cls.Superclass.Name, "A class can't inherit from itself.")
		}
		r.resolveExpr(cls.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, m := range cls.Methods {
		r.resolveFunction(m)
	}

	r.endScope() // this

	if cls.Superclass != nil {
		r.endScope() // super
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// nothing to do

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
				r.diag.ErrorAtToken(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		// spec §9 open question: `this` outside a class is not statically
		// rejected; with no enclosing scope binding it, resolveLocal
		// leaves no hop entry and the evaluator reports an undefined
		// variable at runtime, exactly as for any other free name.
		r.resolveLocal(e, "this")

	case *ast.SuperExpr:
		r.resolveLocal(e, "super")
	}
}
