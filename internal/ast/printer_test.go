package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxo/internal/token"
)

func TestPrint_ExampleFromGrammar(t *testing.T) {
	// (1 + 2) * -3
	expr := &Binary{
		Op: token.New(token.Star, "*", 1),
		Left: &Grouping{Inner: &Binary{
			Op:    token.New(token.Plus, "+", 1),
			Left:  &Literal{Value: 1.0},
			Right: &Literal{Value: 2.0},
		}},
		Right: &Unary{
			Op:      token.New(token.Minus, "-", 1),
			Operand: &Literal{Value: 3.0},
		},
	}

	assert.Equal(t, "(* (group (+ 1.0 2.0)) (- 3.0))", Print(expr))
}

func TestPrint_Variable(t *testing.T) {
	expr := &Variable{Name: token.New(token.Identifier, "x", 1)}
	assert.Equal(t, "x", Print(expr))
}

func TestPrint_LiteralDisplay(t *testing.T) {
	assert.Equal(t, "nil", Print(&Literal{Value: nil}))
	assert.Equal(t, "true", Print(&Literal{Value: true}))
	assert.Equal(t, "1.0", Print(&Literal{Value: 1.0}))
	assert.Equal(t, "3.14", Print(&Literal{Value: 3.14}))
}
