package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/parser"
)

// Parse prints the AST produced for each file, without resolving or
// running it.
func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
	printer := ast.Printer{Output: stdio.Stdout, WithLines: c.WithLines}

	var hadDiag bool
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		d := diag.New()
		stmts := parser.Parse(src, d)
		if err := printer.Print(stmts); err != nil {
			return err
		}
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
