package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/parser"
)

func TestParseExpressionStatement(t *testing.T) {
	d := diag.New()
	stmts := parser.Parse([]byte("1 + 2;"), d)
	require.False(t, d.HadError())
	require.Len(t, stmts, 1)

	es, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	bin, ok := es.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, 1.0, bin.Left.(*ast.LiteralExpr).Value)
	assert.Equal(t, 2.0, bin.Right.(*ast.LiteralExpr).Value)
}

func TestParseForDesugaring(t *testing.T) {
	d := diag.New()
	stmts := parser.Parse([]byte("for (var i = 0; i < 3; i = i + 1) print i;"), d)
	require.False(t, d.HadError())
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*ast.VarStmt)
	require.True(t, ok, "first statement should be the for-loop initializer")

	loop, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement should be the desugared while")
	assert.True(t, loop.IsDesugaredFor)

	body, ok := loop.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
}

func TestParseForOmittedClauses(t *testing.T) {
	d := diag.New()
	stmts := parser.Parse([]byte("for (;;) break;"), d)
	require.False(t, d.HadError())
	require.Len(t, stmts, 1)

	block := stmts[0].(*ast.BlockStmt)
	loop := block.Stmts[1].(*ast.WhileStmt)
	lit, ok := loop.Cond.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParseClassWithSuperclass(t *testing.T) {
	d := diag.New()
	stmts := parser.Parse([]byte(`class B < A { greet() { super.greet(); } }`), d)
	require.False(t, d.HadError())
	require.Len(t, stmts, 1)

	cls, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, cls.Superclass)
	assert.Equal(t, "A", cls.Superclass.Name.Lexeme)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "greet", cls.Methods[0].Name.Lexeme)
}

func TestParseAssignmentTargets(t *testing.T) {
	d := diag.New()
	stmts := parser.Parse([]byte("a.b = 1;"), d)
	require.False(t, d.HadError())
	es := stmts[0].(*ast.ExpressionStmt)
	_, ok := es.Expr.(*ast.SetExpr)
	assert.True(t, ok)
}

func TestParseInvalidAssignmentTargetReportsError(t *testing.T) {
	d := diag.New()
	parser.Parse([]byte("1 = 2;"), d)
	assert.True(t, d.HadError())
}

func TestParseCallChaining(t *testing.T) {
	d := diag.New()
	stmts := parser.Parse([]byte("a.b.c()(x).d;"), d)
	require.False(t, d.HadError())
	es := stmts[0].(*ast.ExpressionStmt)
	get, ok := es.Expr.(*ast.GetExpr)
	require.True(t, ok)
	assert.Equal(t, "d", get.Name.Lexeme)
}

func TestParseMissingSemicolonRecovers(t *testing.T) {
	d := diag.New()
	stmts := parser.Parse([]byte("var x = 1\nvar y = 2;"), d)
	assert.True(t, d.HadError())
	// the bad declaration is dropped but parsing resumes at "var y".
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "y", v.Name.Lexeme)
}

func TestParseTooManyArgumentsIsNotFatal(t *testing.T) {
	d := diag.New()
	args := ""
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ", "
		}
		args += "1"
	}
	stmts := parser.Parse([]byte("f("+args+");"), d)
	assert.True(t, d.HadError())
	require.Len(t, stmts, 1, "parsing continues past the arity diagnostic")
}
