package parser

import (
	"github.com/willowlang/willow/lang/ast"
	"github.com/willowlang/willow/lang/token"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → (call ".")? IDENT "=" assignment | logic_or
//
// Parsed by speculating: parse the left side as an ordinary expression,
// and only on seeing '=' check that it was in fact a Variable or Get,
// converting it to an Assignment or Set; any other left side is a
// syntax error at the '=' token.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQ) {
		eq := p.previous()
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: e.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: e.Object, Name: e.Name, Value: value}
		default:
			p.errorAt(eq, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

// logic_or → logic_and ("or" logic_and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and → equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality → comparison (("==" | "!=") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EQ_EQ, token.BANG_EQ) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → addition ((">" | ">=" | "<" | "<=") addition)*
func (p *Parser) comparison() ast.Expr {
	expr := p.addition()
	for p.match(token.GT, token.GT_EQ, token.LT, token.LT_EQ) {
		op := p.previous()
		right := p.addition()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// addition → multiplication (("+" | "-") multiplication)*
func (p *Parser) addition() ast.Expr {
	expr := p.multiplication()
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right := p.multiplication()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// multiplication → unary (("*" | "/") unary)*
func (p *Parser) multiplication() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ("!" | "-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" args? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "Expect property name after '.'.")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= MaxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	closingParen := p.consume(token.RPAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, ClosingParen: closingParen, Args: args}
}

// primary → NUMBER | STRING | "true" | "false" | "nil" | "this"
//         | "super" "." IDENT | IDENT | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Tok: p.previous(), Value: false}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Tok: p.previous(), Value: true}
	case p.match(token.NIL):
		return &ast.LiteralExpr{Tok: p.previous(), Value: nil}
	case p.match(token.NUMBER):
		tok := p.previous()
		return &ast.LiteralExpr{Tok: tok, Value: tok.Number}
	case p.match(token.STRING):
		tok := p.previous()
		return &ast.LiteralExpr{Tok: tok, Value: tok.Str}
	case p.match(token.SUPER):
		kw := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENT, "Expect superclass method name.")
		return &ast.SuperExpr{Keyword: kw, Method: method}
	case p.match(token.THIS):
		return &ast.ThisExpr{Keyword: p.previous()}
	case p.match(token.IDENT):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.LPAREN):
		lparen := p.previous()
		e := p.expression()
		p.consume(token.RPAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{LParen: lparen, Inner: e}
	}

	p.errorAt(p.peek(), "Expect expression.")
	panic(errParse{})
}
