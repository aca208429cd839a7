package interp_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/interp"
	"github.com/willowlang/willow/lang/parser"
	"github.com/willowlang/willow/lang/resolver"
)

// run parses, resolves and interprets src, returning stdout and the
// diagnostics collaborator so a test can inspect either outcome.
func run(t *testing.T, src string) (string, *diag.Diagnostics) {
	t.Helper()
	d := diag.New()
	stmts := parser.Parse([]byte(src), d)
	require.False(t, d.HadError(), "unexpected parse errors")
	hops := resolver.Resolve(stmts, d)
	require.False(t, d.HadError(), "unexpected resolver errors")

	var out bytes.Buffer
	it := interp.New(d, &out)
	it.Interpret(context.Background(), stmts, hops)
	return out.String(), d
}

func TestArithmeticAndPrint(t *testing.T) {
	out, d := run(t, `print 1 + 2;`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "3\n", out)
}

func TestBlockScopingShadowsOuter(t *testing.T) {
	out, d := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "2\n1\n", out)
}

func TestClosureCapturesSharedMutableState(t *testing.T) {
	out, d := run(t, `
		fun makeCounter() {
			var i = 0;
			fun c() { i = i + 1; print i; }
			return c;
		}
		var c = makeCounter();
		c();
		c();
	`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "1\n2\n", out)
}

func TestForLoopContinueStillRunsUpdate(t *testing.T) {
	out, d := run(t, `for (var i = 0; i < 3; i = i + 1) { if (i == 1) continue; print i; }`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "0\n2\n", out)
}

func TestSuperDispatchesToAncestorMethod(t *testing.T) {
	out, d := run(t, `
		class A { greet() { print "A"; } }
		class B < A { greet() { super.greet(); print "B"; } }
		B().greet();
	`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "A\nB\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, d := run(t, `var x = "foo"; print x + "bar";`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "foobar\n", out)
}

func TestClosuresOverDistinctLoopScopesCaptureOwnValue(t *testing.T) {
	out, d := run(t, `
		var fns = nil;
		var first = nil;
		var second = nil;
		var third = nil;
		{ var i = 1; fun f() { print i; } first = f; }
		{ var i = 2; fun f() { print i; } second = f; }
		{ var i = 3; fun f() { print i; } third = f; }
		first();
		second();
		third();
	`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestDivisionByZeroIsRuntimeErrorNotInfinity(t *testing.T) {
	_, d := run(t, `print 1 / 0;`)
	assert.True(t, d.HadRuntimeError())
}

func TestStringPlusNumberIsRuntimeError(t *testing.T) {
	_, d := run(t, `print "a" + 1;`)
	assert.True(t, d.HadRuntimeError())
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, d := run(t, `var x = 1; x();`)
	assert.True(t, d.HadRuntimeError())
}

func TestCallingWithWrongArityIsRuntimeError(t *testing.T) {
	_, d := run(t, `fun f(a, b) { return a + b; } f(1);`)
	assert.True(t, d.HadRuntimeError())
}

func TestInstanceFieldShadowsMethod(t *testing.T) {
	out, d := run(t, `
		class A { m() { print "method"; } }
		var a = A();
		a.m = "field";
		print a.m;
	`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "field\n", out)
}

func TestInitRunsOnConstructionAndReturnsInstance(t *testing.T) {
	out, d := run(t, `
		class Point {
			init(x, y) { this.x = x; this.y = y; }
		}
		var p = Point(1, 2);
		print p.x;
		print p.y;
	`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "1\n2\n", out)
}

func TestReturnAtTopLevelSurfacesAsRuntimeError(t *testing.T) {
	_, d := run(t, `return 1;`)
	assert.True(t, d.HadRuntimeError())
}

func TestBreakInCalledFunctionDoesNotEscapeToCallersLoop(t *testing.T) {
	out, d := run(t, `while (true) { fun g() { break; } g(); print "after"; }`)
	assert.True(t, d.HadRuntimeError())
	assert.Equal(t, "", out)
}

func TestContinueInCalledFunctionDoesNotEscapeToCallersLoop(t *testing.T) {
	out, d := run(t, `while (true) { fun g() { continue; } g(); print "after"; }`)
	assert.True(t, d.HadRuntimeError())
	assert.Equal(t, "", out)
}

func TestPrintStringifiesEachValueKind(t *testing.T) {
	out, d := run(t, `
		print nil;
		print true;
		print false;
		print 3.0;
		print 3.5;
		class A {}
		print A;
		print A();
		fun f() {}
		print f;
	`)
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, "nil\ntrue\nfalse\n3\n3.5\n<class A>\n<A object>\n<fn f>\n", out)
}
