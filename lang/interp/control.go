package interp

import (
	"fmt"

	"github.com/willowlang/willow/lang/value"
)

// Control-flow escapes are modeled as distinct Go error types rather
// than a single "signal" enum, so that a plain error from a genuine
// runtime fault (divide by zero, wrong arity, ...) can never be
// mistaken for one. Per the language spec's escape table (§5), a
// returnEscape may cross any number of block and loop boundaries but
// is only ever caught at a function-call boundary; break/continue are
// caught only at the innermost While.

type returnEscape struct {
	value value.Value
}

func (returnEscape) Error() string { return "return outside a function call" }

type breakEscape struct{}

func (breakEscape) Error() string { return "break outside a loop" }

type continueEscape struct{}

func (continueEscape) Error() string { return "continue outside a loop" }

// runtimeError is a genuine language-level fault: wrong type, unknown
// name, bad arity, and so on. Its line is attributed to the AST node
// whose evaluation failed.
type runtimeError struct {
	line int
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }

func newRuntimeError(line int, format string, args ...interface{}) error {
	return &runtimeError{line: line, msg: fmt.Sprintf(format, args...)}
}
