package interp

import (
	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/token"
	"github.com/willowlang/willow/lang/value"
)

func (it *Interpreter) evalExpr(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e), nil

	case *ast.GroupingExpr:
		return it.evalExpr(e.Inner)

	case *ast.UnaryExpr:
		return it.evalUnary(e)

	case *ast.BinaryExpr:
		return it.evalBinary(e)

	case *ast.LogicalExpr:
		return it.evalLogical(e)

	case *ast.VariableExpr:
		return it.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if depth, ok := it.hops[e]; ok {
			it.env.AssignAt(depth, e.Name.Lexeme, v)
		} else if !it.globals.AssignGlobal(e.Name.Lexeme, v) {
			return nil, newRuntimeError(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.CallExpr:
		return it.evalCall(e)

	case *ast.GetExpr:
		return it.evalGet(e)

	case *ast.SetExpr:
		return it.evalSet(e)

	case *ast.ThisExpr:
		return it.lookUpVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return it.evalSuper(e)
	}
	panic("interp: unhandled expression type")
}

func literalValue(e *ast.LiteralExpr) value.Value {
	switch v := e.Value.(type) {
	case nil:
		return value.Nil
	case bool:
		return value.Bool(v)
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	default:
		return value.Nil
	}
}

// lookUpVariable implements §4.4's shared read dispatch for Variable,
// This and Super: consult the hop table first, falling back to a
// global lookup when the resolver left no entry.
func (it *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (value.Value, error) {
	if depth, ok := it.hops[expr]; ok {
		v, ok := it.env.GetAt(depth, name.Lexeme)
		if !ok {
			return nil, newRuntimeError(name.Line, "Undefined variable '%s'.", name.Lexeme)
		}
		return v, nil
	}
	v, ok := it.globals.GetGlobal(name.Lexeme)
	if !ok {
		return nil, newRuntimeError(name.Line, "Undefined variable '%s'.", name.Lexeme)
	}
	return v, nil
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, newRuntimeError(e.Op.Line, "Operand must be number.")
		}
		return -n, nil
	case token.BANG:
		return value.Bool(!value.Truthy(right)), nil
	}
	panic("interp: unhandled unary operator")
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EQ_EQ:
		return value.Bool(value.Equal(left, right)), nil
	case token.BANG_EQ:
		return value.Bool(!value.Equal(left, right)), nil
	case token.PLUS:
		return evalAdd(left, right, e.Op.Line)
	case token.MINUS, token.STAR, token.SLASH, token.GT, token.GT_EQ, token.LT, token.LT_EQ:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, newRuntimeError(e.Op.Line, "Operands must be numbers.")
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			if rn == 0 {
				return nil, newRuntimeError(e.Op.Line, "Division by zero.")
			}
			return ln / rn, nil
		case token.GT:
			return value.Bool(ln > rn), nil
		case token.GT_EQ:
			return value.Bool(ln >= rn), nil
		case token.LT:
			return value.Bool(ln < rn), nil
		case token.LT_EQ:
			return value.Bool(ln <= rn), nil
		}
	}
	panic("interp: unhandled binary operator")
}

// evalAdd implements the overloaded `+`: numeric sum, string
// concatenation, or a runtime error for any other combination (§4.4).
func evalAdd(left, right value.Value, line int) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return ls + rs, nil
		}
	}
	return nil, newRuntimeError(line, "Operands must be two numbers or two strings.")
}

func (it *Interpreter) evalLogical(e *ast.LogicalExpr) (value.Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if value.Truthy(left) {
			return left, nil
		}
	} else { // AND
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return it.evalExpr(e.Right)
}

func (it *Interpreter) evalCall(e *ast.CallExpr) (value.Value, error) {
	callee, err := it.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := it.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, newRuntimeError(e.ClosingParen.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.ClosingParen.Line, "Expected %d parameters, but got %d arguments.", callable.Arity(), len(args))
	}
	return callable.Call(it, args)
}

func (it *Interpreter) evalGet(e *ast.GetExpr) (value.Value, error) {
	obj, err := it.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Line, "Only instances have properties.")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (it *Interpreter) evalSet(e *ast.SetExpr) (value.Value, error) {
	obj, err := it.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Line, "Only instances have properties.")
	}
	v, err := it.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}

// evalSuper implements §4.4's `super.m` dispatch: the hop table
// locates `super`'s environment; `this` always lives exactly one
// scope further in, since the resolver pushes the paired super/this
// scopes in that order (§4.3).
func (it *Interpreter) evalSuper(e *ast.SuperExpr) (value.Value, error) {
	depth, ok := it.hops[e]
	if !ok {
		return nil, newRuntimeError(e.Keyword.Line, "Undefined variable 'super'.")
	}
	sv, ok := it.env.GetAt(depth, "super")
	if !ok {
		return nil, newRuntimeError(e.Keyword.Line, "Undefined variable 'super'.")
	}
	superclass := sv.(*value.Class)

	this, ok := it.env.GetAt(depth-1, "this")
	if !ok {
		return nil, newRuntimeError(e.Keyword.Line, "Undefined variable 'this'.")
	}
	instance := this.(*value.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
