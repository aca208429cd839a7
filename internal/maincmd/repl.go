package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mna/mainer"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/interp"
	"github.com/willowlang/willow/lang/parser"
	"github.com/willowlang/willow/lang/resolver"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D97706"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// Repl implements §6's interactive-loop contract: each line is
// scanned, parsed, resolved and run against one long-lived
// interpreter and environment, so a var or fun defined on one line
// stays visible on the next. Diagnostics reset between lines — one
// line's syntax error never poisons the next.
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, _ []string) error {
	d := diag.New()
	it := interp.New(d, stdio.Stdout)

	scanner := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, promptStyle.Render("> "))
		if !scanner.Scan() {
			fmt.Fprintln(stdio.Stdout)
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		d.Reset()
		stmts := parser.Parse([]byte(line), d)
		if !d.HadError() {
			hops := resolver.Resolve(stmts, d)
			if !d.HadError() {
				it.Interpret(ctx, stmts, hops)
			}
		}
		if d.HadError() || d.HadRuntimeError() {
			for _, e := range d.Errors() {
				fmt.Fprintln(stdio.Stderr, errorStyle.Render(e.Error()))
			}
		}
	}
}
