package maincmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"
	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/parser"
	"github.com/willowlang/willow/lang/resolver"
)

// Resolve prints the AST for each file followed by the hop table the
// resolver computed for it: one line per variable/this/super
// reference naming its source line and the number of enclosing scopes
// to walk to find its binding, or "global" when the resolver left no
// entry (§4.3's static binding pass).
func (c *Cmd) Resolve(_ context.Context, stdio mainer.Stdio, args []string) error {
	printer := ast.Printer{Output: stdio.Stdout, WithLines: c.WithLines}

	var hadDiag bool
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		d := diag.New()
		stmts := parser.Parse(src, d)
		if d.HadError() {
			d.Print(stdio.Stderr)
			hadDiag = true
			continue
		}

		hops := resolver.Resolve(stmts, d)
		if err := printer.Print(stmts); err != nil {
			return err
		}
		printHops(stdio.Stdout, stmts, hops)
		d.Print(stdio.Stderr)
		if d.HadError() {
			hadDiag = true
		}
	}
	if hadDiag {
		return errHadDiagnostics
	}
	return nil
}

// printHops walks prog reporting the hop count the resolver bound to
// every Variable, Assign, This and Super expression.
func printHops(w io.Writer, prog []ast.Stmt, hops map[ast.Expr]int) {
	fmt.Fprintln(w, "-- hops --")
	var visit ast.VisitorFunc
	visit = func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir != ast.VisitEnter {
			return nil
		}
		switch expr := n.(type) {
		case *ast.VariableExpr, *ast.AssignExpr, *ast.ThisExpr, *ast.SuperExpr:
			if depth, ok := hops[expr.(ast.Expr)]; ok {
				fmt.Fprintf(w, "[line %d] %T: %d\n", expr.(ast.Expr).Line(), expr, depth)
			} else {
				fmt.Fprintf(w, "[line %d] %T: global\n", expr.(ast.Expr).Line(), expr)
			}
		}
		return visit
	}
	for _, s := range prog {
		ast.Walk(visit, s)
	}
}
