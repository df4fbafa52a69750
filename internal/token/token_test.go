package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString_Number(t *testing.T) {
	tok := WithLiteral(Number, "42", 42.0, 1)
	assert.Equal(t, "NUMBER 42 42.0", tok.String())
}

func TestTokenString_NumberFractional(t *testing.T) {
	tok := WithLiteral(Number, "3.14", 3.14, 1)
	assert.Equal(t, "NUMBER 3.14 3.14", tok.String())
}

func TestTokenString_String(t *testing.T) {
	tok := WithLiteral(String, `"lox"`, "lox", 1)
	assert.Equal(t, `STRING "lox" lox`, tok.String())
}

func TestTokenString_NilLiteral(t *testing.T) {
	tok := New(LeftParen, "(", 1)
	assert.Equal(t, "LEFT_PAREN ( null", tok.String())
}

func TestTokenString_EOF(t *testing.T) {
	tok := New(EOF, "", 1)
	assert.Equal(t, "EOF  null", tok.String())
}

func TestKeywords_CoverAllReservedWords(t *testing.T) {
	reserved := []string{
		"and", "class", "else", "false", "fun", "for", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}
	for _, word := range reserved {
		_, ok := Keywords[word]
		assert.Truef(t, ok, "expected %q to be a recognized keyword", word)
	}
}
