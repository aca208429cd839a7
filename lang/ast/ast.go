// Package ast defines the abstract syntax tree produced by the parser.
//
// Expressions and statements are two disjoint sums, following the
// per-kind-file split, the fmt.Formatter-based node printing, and the
// Walk/Visitor traversal shape of github.com/mna/nenuphar/lang/ast,
// generalized to Willow's grammar. Each node is a pointer to its own
// struct so that two syntactically identical uses (e.g. two
// `Variable("x")` reads) remain distinguishable by identity — the
// resolver's hop table is keyed on exactly this pointer identity, never
// on structural equality.
package ast

import "fmt"

// Node is implemented by every Expr and Stmt.
type Node interface {
	// Every Node implements fmt.Formatter so the AST printer can describe
	// it; only the 'v' and 's' verbs are supported.
	fmt.Formatter

	// Line reports the source line this node starts on.
	Line() int

	// Walk visits every direct child of this node with v.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

func format(f fmt.State, verb rune, label string) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%s)", verb, label)
		return
	}
	fmt.Fprint(f, label)
}
