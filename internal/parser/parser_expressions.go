package parser

import (
	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/diagnostics"
	"github.com/akashmaji946/loxo/internal/token"
)

// expression := assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment := IDENT "=" assignment | logicOr
// The left side is parsed as a full logicOr expression first; only after
// seeing '=' do we check whether it was actually a Variable. Assignment is
// right-associative via the recursive call on the right-hand side.
func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment() // right-associative; RHS is always consumed

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assignment{Name: v.Name, Value: value}
		}
		p.errorAt(equals, diagnostics.InvalidAssignTarget, "Invalid assignment target.")
		return expr
	}
	return expr
}

// logicOr := logicAnd ("or" logicAnd)*
func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.Or) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Op: op, Left: expr, Right: right}
	}
	return expr
}

// logicAnd := equality ("and" equality)*
func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Op: op, Left: expr, Right: right}
	}
	return expr
}

// equality := comparison (("!="|"==") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr
}

// comparison := term ((">"|">="|"<"|"<=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEq, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr
}

// term := factor (("-"|"+") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr
}

// factor := unary (("/"|"*") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr
}

// unary := ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand}
	}
	return p.call()
}

// call := primary ( "(" arguments? ")" )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(token.LeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

// arguments := expression ("," expression)*    -- at most 255
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.warnAt(p.peek(), diagnostics.TooManyArguments, "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, _ := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary := NUMBER | STRING | "true" | "false" | "nil"
//         |  "(" expression ")" | IDENT
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}
	case p.match(token.True):
		return &ast.Literal{Value: true}
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		inner := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: inner}
	default:
		p.errorAt(p.peek(), diagnostics.ExpectedExpression, "Expect expression.")
		return &ast.Literal{Value: nil}
	}
}
