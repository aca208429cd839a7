package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/scanner"
)

// Tokenize prints the raw token stream for each file, one token per
// line, without parsing. Useful to debug the scanner in isolation.
func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	var hadDiag bool
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		d := diag.New()
		toks := scanner.ScanTokens(src, d)
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "[line %d] %v\n", tok.Line, tok)
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
