// Package diag is the diagnostics collaborator shared by every pass of
// the pipeline (scanner, parser, resolver, evaluator). It accumulates
// syntax, static and runtime errors and formats them the way §6 of the
// language spec requires: "[line N] Error<where>: <message>".
package diag

import (
	"fmt"
	"io"

	"github.com/willowlang/willow/lang/token"
)

// Diagnostics accumulates errors across a single run of the pipeline and
// exposes the had_error / had_runtime_error flags the driver uses to
// decide its exit code.
type Diagnostics struct {
	errs    []error
	hadErr  bool
	hadRun  bool
}

// New returns a fresh, empty Diagnostics collaborator.
func New() *Diagnostics { return &Diagnostics{} }

// HadError reports whether any syntax or static error was recorded.
func (d *Diagnostics) HadError() bool { return d.hadErr }

// HadRuntimeError reports whether a runtime error was recorded.
func (d *Diagnostics) HadRuntimeError() bool { return d.hadRun }

// Reset clears both flags and the accumulated error list, for REPL mode
// where each line gets a fresh diagnostic slate.
func (d *Diagnostics) Reset() {
	d.errs = d.errs[:0]
	d.hadErr = false
	d.hadRun = false
}

// ErrorAtLine records a syntax or static error attributed only to a
// source line (no offending lexeme), as scanner errors are.
func (d *Diagnostics) ErrorAtLine(line int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	d.report(line, "", msg)
	d.hadErr = true
}

// ErrorAtToken records a syntax or static error attributed to a specific
// token, rendering "at end" for an EOF token or "at '<lexeme>'"
// otherwise.
func (d *Diagnostics) ErrorAtToken(tok token.Token, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	var where string
	if tok.Kind == token.EOF {
		where = " at end"
	} else {
		where = " at '" + tok.Lexeme + "'"
	}
	d.report(tok.Line, where, msg)
	d.hadErr = true
}

// RuntimeError records an error raised while evaluating the program,
// attributed to the line of the operation that failed.
func (d *Diagnostics) RuntimeError(line int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	d.report(line, "", msg)
	d.hadRun = true
}

func (d *Diagnostics) report(line int, where, msg string) {
	d.errs = append(d.errs, fmt.Errorf("[line %d] Error%s: %s", line, where, msg))
}

// Print writes every accumulated diagnostic to w, one per line, in the
// order they were recorded.
func (d *Diagnostics) Print(w io.Writer) {
	for _, e := range d.errs {
		fmt.Fprintln(w, e)
	}
}

// Errors returns the accumulated diagnostics, sorted only by recording
// order (the order they were produced by the pipeline).
func (d *Diagnostics) Errors() []error {
	out := make([]error, len(d.errs))
	copy(out, d.errs)
	return out
}
