package scanner_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/scanner"
	"github.com/willowlang/willow/lang/token"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"empty", "", []token.Kind{token.EOF}},
		{
			"punctuation",
			"(){};,.-+*/",
			[]token.Kind{token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.SEMI,
				token.COMMA, token.DOT, token.MINUS, token.PLUS, token.STAR, token.SLASH, token.EOF},
		},
		{
			"operators",
			"! != = == > >= < <=",
			[]token.Kind{token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ, token.GT, token.GT_EQ,
				token.LT, token.LT_EQ, token.EOF},
		},
		{
			"comment is skipped",
			"var x = 1; // trailing comment\nprint x;",
			[]token.Kind{token.VAR, token.IDENT, token.EQ, token.NUMBER, token.SEMI,
				token.PRINT, token.IDENT, token.SEMI, token.EOF},
		},
		{
			"keywords",
			"and class else false fun for if nil or print return super this true var while break continue",
			[]token.Kind{token.AND, token.CLASS, token.ELSE, token.FALSE, token.FUN, token.FOR,
				token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER, token.THIS,
				token.TRUE, token.VAR, token.WHILE, token.BREAK, token.CONTINUE, token.EOF},
		},
		{"string literal", `"hello world"`, []token.Kind{token.STRING, token.EOF}},
		{"number literal", "123 1.5", []token.Kind{token.NUMBER, token.NUMBER, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diag.New()
			toks := scanner.ScanTokens([]byte(tt.src), d)
			got := make([]token.Kind, len(toks))
			for i, tok := range toks {
				got[i] = tok.Kind
			}
			assert.Equal(t, tt.want, got)
			assert.False(t, d.HadError())
		})
	}
}

func TestScanTokensLineTracking(t *testing.T) {
	d := diag.New()
	src := "var x = 1;\nvar y = 2;\n"
	toks := scanner.ScanTokens([]byte(src), d)

	lines := make([]string, 0, len(toks))
	for _, tok := range toks {
		lines = append(lines, fmt.Sprintf("%d:%s", tok.Line, tok.Kind))
	}
	got := strings.Join(lines, " ")
	assert.Contains(t, got, "1:var")
	assert.Contains(t, got, "2:var")
}

func TestScanTokensUnterminatedString(t *testing.T) {
	d := diag.New()
	scanner.ScanTokens([]byte(`"unterminated`), d)
	assert.True(t, d.HadError())
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	d := diag.New()
	scanner.ScanTokens([]byte("@"), d)
	assert.True(t, d.HadError())
}
