// Package parser implements a recursive-descent parser that turns a Lox
// token stream into a statement-list AST. It never aborts on a grammar
// violation: it emits a diagnostic, synchronizes to the next statement
// boundary, and keeps parsing so later errors are reported too.
package parser

import (
	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/diagnostics"
	"github.com/akashmaji946/loxo/internal/token"
)

// maxArgs is the parse-time limit on call arguments and function
// parameters (§4.2 grammar: "at most 255").
const maxArgs = 255

// Parser consumes a fixed token slice (already lexed, ending in EOF) and
// builds an AST. It accumulates Diagnostics rather than returning early.
type Parser struct {
	tokens []token.Token
	pos    int
	diags  diagnostics.List

	// panicking marks that the statement currently being parsed has hit a
	// grammar violation; declaration() checks this after each top-level
	// (or block-level) statement attempt and, if set, synchronizes to the
	// next statement boundary and clears the flag.
	panicking bool

	// funcDepth counts how many function bodies currently enclose the
	// statement being parsed; returnStmt consults it to reject `return`
	// outside any function (§4.3: "outside any function, return is a
	// parse-time error").
	funcDepth int
}

// New creates a Parser over an already-scanned token stream. Per §4.2, a
// LexError token is observed here, reported once, and skipped, so the
// grammar never sees it: the rest of the stream is parsed as if the bad
// token weren't there, and lex/parse diagnostics accumulate in one pass.
func New(tokens []token.Token) *Parser {
	p := &Parser{}
	p.tokens = make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.LexError {
			p.reportLexError(t)
			continue
		}
		p.tokens = append(p.tokens, t)
	}
	return p
}

// reportLexError re-derives the lexer's own diagnostic message from a
// LexError token's embedded code, so `parse`/`evaluate`/`run` see it without
// the lexer's diagnostics being consulted a second time.
func (p *Parser) reportLexError(t token.Token) {
	code, _ := t.Literal.(token.LexErrorCode)
	switch code {
	case token.UnterminatedString:
		p.diags.Add(diagnostics.Lex, diagnostics.UnterminatedString, t.Line, "Unterminated string.")
	default:
		p.diags.Add(diagnostics.Lex, diagnostics.UnexpectedCharacter, t.Line, "Unexpected character: %s", t.Lexeme)
	}
}

// Diagnostics returns every parse-stage diagnostic recorded so far.
func (p *Parser) Diagnostics() diagnostics.List { return p.diags }

// ParseProgram parses `statement* EOF` and returns the top-level
// statements. Diagnostics() should be checked afterward: a non-empty list
// means the returned statements may be incomplete.
func (p *Parser) ParseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ParseExpression parses a single `expression` — the `evaluate` subcommand
// parses one expression rather than a full program.
func (p *Parser) ParseExpression() ast.Expr {
	return p.expression()
}

// ---- token cursor primitives ----

func (p *Parser) peek() token.Token  { return p.tokens[p.pos] }
func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// match advances and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token kind, or records ExpectedToken
// and enters panic mode (see errorAt) if the current token doesn't match.
func (p *Parser) consume(kind token.Kind, message string) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errorAt(p.peek(), diagnostics.ExpectedToken, message)
	return token.Token{}, false
}

// errorAt records a diagnostic and puts the parser into panic mode, which
// the nearest enclosing declaration() call will clear by synchronizing.
func (p *Parser) errorAt(tok token.Token, kind diagnostics.Kind, message string) {
	lexeme := tok.Lexeme
	if tok.Kind == token.EOF {
		lexeme = "end of input"
	}
	p.diags.Add(diagnostics.Parse, kind, tok.Line, "%s (at '%s')", message, lexeme)
	p.panicking = true
}

// warnAt records a diagnostic without entering panic mode, for violations
// that don't invalidate the surrounding statement (§4.2: too many
// arguments/parameters is reported but parsing continues normally).
func (p *Parser) warnAt(tok token.Token, kind diagnostics.Kind, message string) {
	p.diags.Add(diagnostics.Parse, kind, tok.Line, message)
}

// synchronize discards tokens until either a semicolon has just been
// consumed or the next token starts a new statement, per §4.2 recovery.
// If the token the error stopped at already starts a statement, nothing is
// discarded; `class` is the exception, since no statement rule consumes it.
func (p *Parser) synchronize() {
	switch p.peek().Kind {
	case token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
		return
	}
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If,
			token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
