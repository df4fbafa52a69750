package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxo/internal/token"
)

func TestScanTokens_SimpleSourceLine1(t *testing.T) {
	lx := New(`(){},.;-+*/! != = == > >= < <=`)
	tokens := lx.ScanTokens()

	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}

	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Semicolon, token.Minus, token.Plus,
		token.Star, token.Slash, token.Bang, token.BangEqual, token.Equal,
		token.EqualEqual, token.Greater, token.GreaterEq, token.Less,
		token.LessEqual, token.EOF,
	}, kinds)
	assert.False(t, lx.Diagnostics().HasErrors())
}

func TestScanTokens_Number(t *testing.T) {
	lx := New("42\n3.14")
	tokens := lx.ScanTokens()

	assert.Equal(t, "NUMBER 42 42.0", tokens[0].String())
	assert.Equal(t, "NUMBER 3.14 3.14", tokens[1].String())
}

func TestScanTokens_String(t *testing.T) {
	lx := New(`"lox"`)
	tokens := lx.ScanTokens()
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "lox", tokens[0].Literal)
}

func TestScanTokens_UnterminatedStringIsLexError(t *testing.T) {
	lx := New(`"abc`)
	tokens := lx.ScanTokens()

	assert.Equal(t, token.LexError, tokens[0].Kind)
	require := lx.Diagnostics()
	assert.True(t, require.HasErrors())
	assert.Equal(t, "[line 1] Unterminated string.", require[0].Error())
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	lx := New("@")
	tokens := lx.ScanTokens()

	assert.Equal(t, token.LexError, tokens[0].Kind)
	assert.True(t, lx.Diagnostics().HasErrors())
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	lx := New("var x = 1; print x;")
	tokens := lx.ScanTokens()

	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Equal, token.Number, token.Semicolon,
		token.Print, token.Identifier, token.Semicolon, token.EOF,
	}, kinds)
}

func TestScanTokens_LineCommentsAreSkipped(t *testing.T) {
	lx := New("1 // a comment\n2")
	tokens := lx.ScanTokens()

	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, token.Number, tokens[1].Kind)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_ConfigExtraIdentChars(t *testing.T) {
	lx := NewWithConfig("@name", Config{ExtraIdentChars: "@"})
	tokens := lx.ScanTokens()

	assert.False(t, lx.Diagnostics().HasErrors())
	assert.Equal(t, token.Identifier, tokens[0].Kind)
	assert.Equal(t, "@name", tokens[0].Lexeme)
}

func TestScanTokens_BacktickIsIdentifierContinuation(t *testing.T) {
	lx := New("a`b")
	tokens := lx.ScanTokens()

	assert.Equal(t, token.Identifier, tokens[0].Kind)
	assert.Equal(t, "a`b", tokens[0].Lexeme)
}
