package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxo/internal/value"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number{Value: 1})

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number{Value: 1}, v)
}

func TestGet_UndefinedFails(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("nope")
	assert.False(t, ok)
}

func TestGet_WalksEnclosingScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)

	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number{Value: 1}, v)
}

func TestAssign_NeverAutoDeclares(t *testing.T) {
	env := New(nil)
	ok := env.Assign("x", value.Number{Value: 1})
	assert.False(t, ok)
	_, getOk := env.Get("x")
	assert.False(t, getOk)
}

func TestAssign_MutatesNearestBinding(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)

	ok := inner.Assign("x", value.Number{Value: 2})
	assert.True(t, ok)

	v, _ := outer.Get("x")
	assert.Equal(t, value.Number{Value: 2}, v)
}

func TestDefine_ShadowsInChildScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)
	inner.Define("x", value.Number{Value: 2})

	v, _ := inner.Get("x")
	assert.Equal(t, value.Number{Value: 2}, v)
	outerV, _ := outer.Get("x")
	assert.Equal(t, value.Number{Value: 1}, outerV)
}
