// Package environment implements the Lox scope chain: a mapping from
// identifier to value, plus a reference to an optional enclosing
// environment. The chain is a tree rooted at the global scope — an inner
// environment's Enclosing pointer never cycles back to a descendant.
package environment

import "github.com/akashmaji946/loxo/internal/value"

// Environment is one lexical scope.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates a scope enclosed by parent (nil for the global scope).
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: parent}
}

// Define binds name to v in this scope. It always creates or shadows in
// this scope, even if name is already bound here (silent redeclaration) or
// in an enclosing scope (shadowing).
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name by walking outward from this scope. It reports false
// if name is not bound anywhere in the chain.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// Assign mutates the nearest binding that defines name, walking outward
// from this scope. It reports false — and mutates nothing — if name is
// not bound anywhere in the chain; Lox assignment never auto-declares.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, v)
	}
	return false
}
