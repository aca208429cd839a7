package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/interp"
	"github.com/willowlang/willow/lang/parser"
	"github.com/willowlang/willow/lang/resolver"
)

// Run reads a single source file and executes it once (§6's
// one-path CLI contract). Diagnostics from any pipeline stage are
// printed to stderr; if any were recorded, Run returns
// errHadDiagnostics so Main can map that to exit code 65.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	d := diag.New()
	stmts := parser.Parse(src, d)
	if !d.HadError() {
		hops := resolver.Resolve(stmts, d)
		if !d.HadError() {
			it := interp.New(d, stdio.Stdout)
			it.Interpret(ctx, stmts, hops)
		}
	}

	d.Print(stdio.Stderr)
	if d.HadError() || d.HadRuntimeError() {
		return errHadDiagnostics
	}
	return nil
}
