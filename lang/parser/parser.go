// Package parser implements the recursive-descent parser that turns a
// token sequence into an AST of statements.
//
// The one-token-lookahead cursor, the advance/check/match helpers, and
// the panic-based error recovery (recovered at the statement boundary,
// matching github.com/mna/nenuphar/lang/parser's own
// expect/errPanicMode pattern) are grounded on the teacher's parser;
// the grammar itself is Willow's (spec §4.2), not the teacher's.
package parser

import (
	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/diag"
	"github.com/willowlang/willow/lang/scanner"
	"github.com/willowlang/willow/lang/token"
)

// MaxArgs is the maximum number of call arguments or function
// parameters; exceeding it is a diagnostic, not a fatal error.
const MaxArgs = 255

// errParse unwinds the recursive descent back to the nearest
// declaration boundary, where synchronize() resumes scanning.
type errParse struct{}

// Parse scans and parses src in one step, returning every top-level
// statement successfully parsed. Errors are reported to d; d.HadError()
// tells the caller whether the result should be discarded.
func Parse(src []byte, d *diag.Diagnostics) []ast.Stmt {
	toks := scanner.ScanTokens(src, d)
	return New(toks, d).Parse()
}

// Parser consumes a token sequence and produces an AST.
type Parser struct {
	toks []token.Token
	cur  int
	diag *diag.Diagnostics
}

// New returns a Parser over toks, reporting errors to d.
func New(toks []token.Token, d *diag.Diagnostics) *Parser {
	return &Parser{toks: toks, diag: d}
}

// Parse runs program → declaration*, collecting every statement that
// parses cleanly; a statement that fails is dropped and parsing resumes
// at the next declaration via synchronize().
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declarationRecovering(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *Parser) declarationRecovering() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(errParse); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()
	return p.declaration()
}

// synchronize discards tokens until it is positioned just past a ';' or
// at the start of the next statement-level keyword, so the parser can
// keep producing diagnostics for the rest of the file instead of
// aborting entirely.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.cur > 0 && p.previous().Kind == token.SEMI {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

func (p *Parser) isAtEnd() bool  { return p.peek().Kind == token.EOF }
func (p *Parser) peek() token.Token { return p.toks[p.cur] }
func (p *Parser) previous() token.Token {
	return p.toks[p.cur-1]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the given kind,
// otherwise reports a diagnostic and unwinds via errParse.
func (p *Parser) consume(kind token.Kind, msg string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAt(p.peek(), msg)
	panic(errParse{})
}

func (p *Parser) errorAt(tok token.Token, msg string) {
	p.diag.ErrorAtToken(tok, "%s", msg)
}
