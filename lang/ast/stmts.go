package ast

import (
	"fmt"

	"github.com/willowlang/willow/lang/token"
)

type (
	// ExpressionStmt is an expression evaluated for its side effect, with
	// the result discarded.
	ExpressionStmt struct {
		Expr Expr
	}

	// PrintStmt evaluates its expression and writes it to standard output.
	PrintStmt struct {
		Keyword token.Token
		Expr    Expr
	}

	// VarStmt declares a new binding in the current environment.
	VarStmt struct {
		Name        token.Token
		Initializer Expr // nil if omitted; defaults to Nil
	}

	// BlockStmt introduces a new lexical scope around its statements.
	BlockStmt struct {
		LBrace token.Token
		Stmts  []Stmt
	}

	// IfStmt is a conditional statement with an optional else branch.
	IfStmt struct {
		Keyword   token.Token
		Cond      Expr
		Then      Stmt
		Else      Stmt // nil if omitted
	}

	// WhileStmt is a condition-checked loop. IsDesugaredFor is set only
	// when this WhileStmt was synthesized from a `for` statement; it
	// governs how `continue` behaves (see lang/interp).
	WhileStmt struct {
		Keyword        token.Token
		Cond           Expr
		Body           Stmt
		IsDesugaredFor bool
	}

	// FunctionStmt declares a named function (or, inside a ClassStmt, a
	// method).
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ClassStmt declares a class with an optional superclass and a set of
	// methods.
	ClassStmt struct {
		Name       token.Token
		Superclass *VariableExpr // nil if there is none
		Methods    []*FunctionStmt
	}

	// ReturnStmt raises a ReturnEscape carrying Value (or Nil if absent).
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr // nil if omitted
	}

	// BreakStmt raises a BreakEscape caught by the innermost active While.
	BreakStmt struct {
		Keyword token.Token
	}

	// ContinueStmt raises a ContinueEscape caught by the innermost active
	// While.
	ContinueStmt struct {
		Keyword token.Token
	}
)

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ClassStmt) stmtNode()      {}
func (*ReturnStmt) stmtNode()     {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}

func (n *ExpressionStmt) Line() int { return n.Expr.Line() }
func (n *PrintStmt) Line() int      { return n.Keyword.Line }
func (n *VarStmt) Line() int        { return n.Name.Line }
func (n *BlockStmt) Line() int      { return n.LBrace.Line }
func (n *IfStmt) Line() int         { return n.Keyword.Line }
func (n *WhileStmt) Line() int      { return n.Keyword.Line }
func (n *FunctionStmt) Line() int   { return n.Name.Line }
func (n *ClassStmt) Line() int      { return n.Name.Line }
func (n *ReturnStmt) Line() int     { return n.Keyword.Line }
func (n *BreakStmt) Line() int      { return n.Keyword.Line }
func (n *ContinueStmt) Line() int   { return n.Keyword.Line }

func (n *ExpressionStmt) Format(f fmt.State, verb rune) { format(f, verb, "expr stmt") }
func (n *PrintStmt) Format(f fmt.State, verb rune)      { format(f, verb, "print") }
func (n *VarStmt) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("var %s", n.Name.Lexeme))
}
func (n *BlockStmt) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("block {stmts=%d}", len(n.Stmts)))
}
func (n *IfStmt) Format(f fmt.State, verb rune) { format(f, verb, "if") }
func (n *WhileStmt) Format(f fmt.State, verb rune) {
	label := "while"
	if n.IsDesugaredFor {
		label = "while (desugared for)"
	}
	format(f, verb, label)
}
func (n *FunctionStmt) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("function %s {params=%d}", n.Name.Lexeme, len(n.Params)))
}
func (n *ClassStmt) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("class %s {methods=%d}", n.Name.Lexeme, len(n.Methods)))
}
func (n *ReturnStmt) Format(f fmt.State, verb rune)   { format(f, verb, "return") }
func (n *BreakStmt) Format(f fmt.State, verb rune)    { format(f, verb, "break") }
func (n *ContinueStmt) Format(f fmt.State, verb rune) { format(f, verb, "continue") }

func (n *ExpressionStmt) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *PrintStmt) Walk(v Visitor)      { Walk(v, n.Expr) }
func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *BreakStmt) Walk(Visitor)    {}
func (n *ContinueStmt) Walk(Visitor) {}
