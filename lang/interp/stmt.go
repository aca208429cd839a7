package interp

import (
	"fmt"

	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/value"
)

func (it *Interpreter) execStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.evalExpr(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := it.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.stdout, v.String())
		return nil

	case *ast.VarStmt:
		v := value.Value(value.Nil)
		if s.Initializer != nil {
			var err error
			v, err = it.evalExpr(s.Initializer)
			if err != nil {
				return err
			}
		}
		it.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return it.execBlock(s.Stmts, value.NewEnvironment(it.env))

	case *ast.IfStmt:
		cond, err := it.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return it.execStmt(s.Then)
		}
		if s.Else != nil {
			return it.execStmt(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		return it.execWhile(s)

	case *ast.FunctionStmt:
		fn := &value.Function{Declaration: s, Closure: it.env}
		it.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ClassStmt:
		return it.execClass(s)

	case *ast.ReturnStmt:
		v := value.Value(value.Nil)
		if s.Value != nil {
			var err error
			v, err = it.evalExpr(s.Value)
			if err != nil {
				return err
			}
		}
		return returnEscape{value: v}

	case *ast.BreakStmt:
		return breakEscape{}

	case *ast.ContinueStmt:
		return continueEscape{}
	}
	return nil
}

// execBlock runs stmts in env, restoring the caller's environment on
// every exit path, including the exceptional ones (§5's requirement
// that block-scope restoration survive an escape or runtime error).
func (it *Interpreter) execBlock(stmts []ast.Stmt, env *value.Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()
	return it.execStmts(stmts)
}

// execWhile runs the guarded loop, applying §4.4's desugared-for
// continue rule: when the body came from `for` desugaring, a caught
// continueEscape must still run the loop's update expression (the
// body's second statement) before re-testing the condition, or an
// update-carrying `for` would spin forever on `continue`.
func (it *Interpreter) execWhile(s *ast.WhileStmt) error {
	for {
		if err := it.checkCancelled(); err != nil {
			return err
		}
		cond, err := it.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if !value.Truthy(cond) {
			return nil
		}

		err = it.execStmt(s.Body)
		switch err.(type) {
		case nil:
			// fall through to next iteration
		case breakEscape:
			return nil
		case continueEscape:
			if s.IsDesugaredFor {
				if uerr := it.runDesugaredForUpdate(s.Body); uerr != nil {
					return uerr
				}
			}
		default:
			return err
		}
	}
}

// runDesugaredForUpdate executes just the update statement — the
// second statement of a desugared for-loop's body block — in a fresh
// scope nested in the current environment, preserving the lexical
// scoping a direct block execution would have given it.
func (it *Interpreter) runDesugaredForUpdate(body ast.Stmt) error {
	block, ok := body.(*ast.BlockStmt)
	if !ok || len(block.Stmts) < 2 {
		return nil
	}
	return it.execBlock(block.Stmts[1:2], value.NewEnvironment(it.env))
}

// execClass builds the class's method closures (over an environment
// binding `super`, when present, per §4.4) and binds the class name.
func (it *Interpreter) execClass(s *ast.ClassStmt) error {
	var superclass *value.Class
	if s.Superclass != nil {
		sv, err := it.evalExpr(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := sv.(*value.Class)
		if !ok {
			return newRuntimeError(s.Superclass.Line(), "Superclass must be a class.")
		}
		superclass = sc
	}

	methodEnv := it.env
	if superclass != nil {
		methodEnv = value.NewEnvironment(it.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*value.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &value.Function{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	it.env.Define(s.Name.Lexeme, value.NewClass(s.Name.Lexeme, superclass, methods))
	return nil
}
