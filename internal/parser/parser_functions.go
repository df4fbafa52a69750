package parser

import (
	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/diagnostics"
	"github.com/akashmaji946/loxo/internal/token"
)

// funDecl := "fun" IDENT "(" params? ")" block
func (p *Parser) funDecl() ast.Stmt {
	name, ok := p.consume(token.Identifier, "Expect function name.")
	if !ok {
		return nil
	}
	if _, ok := p.consume(token.LeftParen, "Expect '(' after function name."); !ok {
		return nil
	}
	params := p.params()
	if _, ok := p.consume(token.RightParen, "Expect ')' after parameters."); !ok {
		return nil
	}
	if _, ok := p.consume(token.LeftBrace, "Expect '{' before function body."); !ok {
		return nil
	}
	p.funcDepth++
	stmts := p.block()
	p.funcDepth--
	body := &ast.Block{Statements: stmts}
	return &ast.Function{Name: name, Params: params, Body: body}
}

// params := IDENT ("," IDENT)*          -- at most 255
func (p *Parser) params() []token.Token {
	var params []token.Token
	if p.check(token.RightParen) {
		return params
	}
	for {
		if len(params) >= maxArgs {
			p.warnAt(p.peek(), diagnostics.TooManyArguments, "Can't have more than 255 parameters.")
		}
		if name, ok := p.consume(token.Identifier, "Expect parameter name."); ok {
			params = append(params, name)
		}
		if !p.match(token.Comma) {
			break
		}
	}
	return params
}
