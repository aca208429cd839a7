package ast

import (
	"fmt"

	"github.com/willowlang/willow/lang/token"
)

type (
	// LiteralExpr is a number, string, boolean or nil literal.
	LiteralExpr struct {
		Tok   token.Token
		Value interface{} // float64, string, bool, or nil
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		LParen token.Token
		Inner  Expr
	}

	// UnaryExpr is a prefix `!` or `-` expression.
	UnaryExpr struct {
		Op    token.Token
		Right Expr
	}

	// BinaryExpr is an arithmetic or comparison expression.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// LogicalExpr is an `and`/`or` expression; unlike BinaryExpr it
	// short-circuits.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// VariableExpr reads a named binding. This is the node kind the
	// resolver's hop table is keyed on by identity.
	VariableExpr struct {
		Name token.Token
	}

	// AssignExpr assigns to a named binding.
	AssignExpr struct {
		Name  token.Token
		Value Expr
	}

	// CallExpr invokes a callable or constructs a class.
	CallExpr struct {
		Callee       Expr
		ClosingParen token.Token
		Args         []Expr
	}

	// GetExpr reads a property off an instance.
	GetExpr struct {
		Object Expr
		Name   token.Token
	}

	// SetExpr writes a property on an instance.
	SetExpr struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr is the `this` keyword used inside a method body.
	ThisExpr struct {
		Keyword token.Token
	}

	// SuperExpr is a `super.method` reference used inside a method body.
	SuperExpr struct {
		Keyword token.Token
		Method  token.Token
	}
)

func (*LiteralExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}

func (n *LiteralExpr) Line() int  { return n.Tok.Line }
func (n *GroupingExpr) Line() int { return n.LParen.Line }
func (n *UnaryExpr) Line() int    { return n.Op.Line }
func (n *BinaryExpr) Line() int   { return n.Op.Line }
func (n *LogicalExpr) Line() int  { return n.Op.Line }
func (n *VariableExpr) Line() int { return n.Name.Line }
func (n *AssignExpr) Line() int   { return n.Name.Line }
func (n *CallExpr) Line() int     { return n.ClosingParen.Line }
func (n *GetExpr) Line() int      { return n.Name.Line }
func (n *SetExpr) Line() int      { return n.Name.Line }
func (n *ThisExpr) Line() int     { return n.Keyword.Line }
func (n *SuperExpr) Line() int    { return n.Keyword.Line }

func (n *LiteralExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("literal %#v", n.Value))
}
func (n *GroupingExpr) Format(f fmt.State, verb rune) { format(f, verb, "group") }
func (n *UnaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("unary %s", n.Op.Lexeme))
}
func (n *BinaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("binary %s", n.Op.Lexeme))
}
func (n *LogicalExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("logical %s", n.Op.Lexeme))
}
func (n *VariableExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("variable %s", n.Name.Lexeme))
}
func (n *AssignExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("assign %s", n.Name.Lexeme))
}
func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("call {args=%d}", len(n.Args)))
}
func (n *GetExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("get %s", n.Name.Lexeme))
}
func (n *SetExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("set %s", n.Name.Lexeme))
}
func (n *ThisExpr) Format(f fmt.State, verb rune)  { format(f, verb, "this") }
func (n *SuperExpr) Format(f fmt.State, verb rune) { format(f, verb, "super."+n.Method.Lexeme) }

func (n *LiteralExpr) Walk(Visitor) {}
func (n *GroupingExpr) Walk(v Visitor) {
	Walk(v, n.Inner)
}
func (n *UnaryExpr) Walk(v Visitor) {
	Walk(v, n.Right)
}
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *VariableExpr) Walk(Visitor) {}
func (n *AssignExpr) Walk(v Visitor) {
	Walk(v, n.Value)
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *GetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
}
func (n *SetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *ThisExpr) Walk(Visitor)  {}
func (n *SuperExpr) Walk(Visitor) {}
