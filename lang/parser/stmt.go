package parser

import (
	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/token"
)

// declaration → varDecl | funDecl | classDecl | statement
func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.VAR):
		return p.varDecl()
	case p.match(token.FUN):
		return p.funDecl("function")
	case p.match(token.CLASS):
		return p.classDecl()
	default:
		return p.statement()
	}
}

// varDecl → "var" IDENT ("=" expression)? ";"
func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(token.IDENT, "Expect variable name.")

	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}
	p.consume(token.SEMI, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

// funDecl → "fun" function ; function → IDENT "(" params? ")" block
func (p *Parser) funDecl(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENT, "Expect "+kind+" name.")
	p.consume(token.LPAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= MaxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENT, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expect ')' after parameters.")

	p.consume(token.LBRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// classDecl → "class" IDENT ("<" IDENT)? "{" function* "}"
func (p *Parser) classDecl() ast.Stmt {
	name := p.consume(token.IDENT, "Expect class name.")

	var superclass *ast.VariableExpr
	if p.match(token.LT) {
		superName := p.consume(token.IDENT, "Expect superclass name.")
		superclass = &ast.VariableExpr{Name: superName}
	}

	p.consume(token.LBRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		methods = append(methods, p.funDecl("method"))
	}
	p.consume(token.RBRACE, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// statement → exprStmt | printStmt | block | ifStmt | whileStmt
//           | forStmt | returnStmt | "break" ";" | "continue" ";"
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.LBRACE):
		lbrace := p.previous()
		return &ast.BlockStmt{LBrace: lbrace, Stmts: p.block()}
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.BREAK):
		kw := p.previous()
		p.consume(token.SEMI, "Expect ';' after 'break'.")
		return &ast.BreakStmt{Keyword: kw}
	case p.match(token.CONTINUE):
		kw := p.previous()
		p.consume(token.SEMI, "Expect ';' after 'continue'.")
		return &ast.ContinueStmt{Keyword: kw}
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() ast.Stmt {
	kw := p.previous()
	value := p.expression()
	p.consume(token.SEMI, "Expect ';' after value.")
	return &ast.PrintStmt{Keyword: kw, Expr: value}
}

func (p *Parser) exprStmt() ast.Stmt {
	e := p.expression()
	p.consume(token.SEMI, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: e}
}

// block parses statements up to (and consuming) the closing brace; the
// caller has already consumed the opening brace.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if s := p.declarationRecovering(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RBRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStmt() ast.Stmt {
	kw := p.previous()
	p.consume(token.LPAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Keyword: kw, Cond: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStmt() ast.Stmt {
	kw := p.previous()
	p.consume(token.LPAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Keyword: kw, Cond: cond, Body: body}
}

// forStmt desugars `for (init; cond; update) body` into
// Block([init, While(cond, Block([body, Expression(update)]), true)]),
// per spec §4.2. This is the sole place WhileStmt.IsDesugaredFor is set.
func (p *Parser) forStmt() ast.Stmt {
	kw := p.previous()
	p.consume(token.LPAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMI):
		initializer = nil
	case p.check(token.VAR):
		p.advance()
		initializer = p.varDecl()
	default:
		initializer = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.expression()
	}
	p.consume(token.SEMI, "Expect ';' after loop condition.")

	var update ast.Expr
	if !p.check(token.RPAREN) {
		update = p.expression()
	}
	p.consume(token.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if cond == nil {
		cond = &ast.LiteralExpr{Tok: kw, Value: true}
	}
	if update == nil {
		update = &ast.LiteralExpr{Tok: kw, Value: true}
	}

	body = &ast.BlockStmt{LBrace: kw, Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: update}}}
	loop := &ast.WhileStmt{Keyword: kw, Cond: cond, Body: body, IsDesugaredFor: true}

	if initializer == nil {
		initializer = &ast.ExpressionStmt{Expr: &ast.LiteralExpr{Tok: kw, Value: true}}
	}
	return &ast.BlockStmt{LBrace: kw, Stmts: []ast.Stmt{initializer, loop}}
}

func (p *Parser) returnStmt() ast.Stmt {
	kw := p.previous()
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.expression()
	}
	p.consume(token.SEMI, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: kw, Value: value}
}
