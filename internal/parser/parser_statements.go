package parser

import (
	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/diagnostics"
	"github.com/akashmaji946/loxo/internal/token"
)

// declaration := varDecl | funDecl | statement
// A parse error anywhere within puts the parser in panic mode; this is the
// level at which recovery happens, so every call site — top-level program,
// and nested blocks alike — resynchronizes independently.
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	switch {
	case p.match(token.Var):
		stmt = p.varDecl()
	case p.match(token.Fun):
		stmt = p.funDecl()
	default:
		stmt = p.statement()
	}
	if p.panicking {
		p.panicking = false
		p.synchronize()
		return nil
	}
	return stmt
}

// varDecl := "var" IDENT ("=" expression)? ";"
func (p *Parser) varDecl() ast.Stmt {
	name, ok := p.consume(token.Identifier, "Expect variable name.")
	if !ok {
		return nil
	}
	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	if !p.expectSemicolon("variable declaration") {
		return nil
	}
	return &ast.Var{Name: name, Init: init}
}

// statement := block | ifStmt | whileStmt | forStmt | printStmt
//           |  returnStmt | exprStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.LeftBrace):
		return &ast.Block{Statements: p.block()}
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.For):
		return p.forStmt()
	case p.match(token.Print):
		return p.printStmt()
	case p.match(token.Return):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

// block := "{" statement* "}"
// The opening brace is already consumed by the caller.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return stmts
}

// ifStmt := "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStmt() ast.Stmt {
	if _, ok := p.consume(token.LeftParen, "Expect '(' after 'if'."); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(token.RightParen, "Expect ')' after if condition."); !ok {
		return nil
	}
	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: elseBranch}
}

// whileStmt := "while" "(" expression ")" statement
func (p *Parser) whileStmt() ast.Stmt {
	if _, ok := p.consume(token.LeftParen, "Expect '(' after 'while'."); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(token.RightParen, "Expect ')' after while condition."); !ok {
		return nil
	}
	body := p.statement()
	return &ast.While{Cond: cond, Body: body}
}

// forStmt := "for" "(" (varDecl|exprStmt|";") expression? ";" expression? ")" statement
// The AST keeps the clauses distinct (ast.For); desugaring to a While
// happens in the evaluator, not here (§4.3, §9).
func (p *Parser) forStmt() ast.Stmt {
	if _, ok := p.consume(token.LeftParen, "Expect '(' after 'for'."); !ok {
		return nil
	}

	var init ast.Stmt
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.match(token.Var):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	if !p.expectSemicolon("loop condition") {
		return nil
	}

	var step ast.Expr
	if !p.check(token.RightParen) {
		step = p.expression()
	}
	if _, ok := p.consume(token.RightParen, "Expect ')' after for clauses."); !ok {
		return nil
	}

	body := p.statement()
	return &ast.For{Init: init, Cond: cond, Step: step, Body: body}
}

// printStmt := "print" expression ";"
func (p *Parser) printStmt() ast.Stmt {
	value := p.expression()
	if !p.expectSemicolon("value") {
		return nil
	}
	return &ast.Print{Expr: value}
}

// returnStmt := "return" expression? ";"
// Outside any function body, `return` is a parse-time error (§4.3); the
// expression and trailing semicolon are still consumed so the rest of the
// statement is parsed normally and later errors can still be reported.
func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	if p.funcDepth == 0 {
		p.errorAt(keyword, diagnostics.ReturnOutsideFunction, "Can't return from top-level code.")
	}
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	if !p.expectSemicolon("return value") {
		return nil
	}
	return &ast.Return{Keyword: keyword, Value: value}
}

// exprStmt := expression ";"
func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	if !p.expectSemicolon("expression") {
		return nil
	}
	return &ast.Expression{Expr: expr}
}