package parser

import "github.com/akashmaji946/loxo/internal/token"

// expectSemicolon consumes a trailing ';' with a message tailored to what
// preceded it; every exprStmt/varDecl/printStmt/returnStmt variant ends
// this way.
func (p *Parser) expectSemicolon(after string) bool {
	_, ok := p.consume(token.Semicolon, "Expect ';' after "+after+".")
	return ok
}
