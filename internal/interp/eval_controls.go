package interp

import (
	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/environment"
	"github.com/akashmaji946/loxo/internal/value"
)

func (v *stmtVisitor) VisitIf(s *ast.If) any {
	cond, err := v.in.evaluate(s.Cond)
	if err != nil {
		v.err = err
		return nil
	}
	switch {
	case value.Truthy(cond):
		v.err = v.in.execute(s.Then)
	case s.Else != nil:
		v.err = v.in.execute(s.Else)
	}
	return nil
}

func (v *stmtVisitor) VisitWhile(s *ast.While) any {
	for {
		cond, err := v.in.evaluate(s.Cond)
		if err != nil {
			v.err = err
			return nil
		}
		if !value.Truthy(cond) {
			return nil
		}
		if err := v.in.execute(s.Body); err != nil {
			v.err = err
			return nil
		}
	}
}

// VisitFor desugars `for (init; cond; step) body` into
// `{ init; while (cond) { body; step; } }` at evaluation time (§4.3, §9),
// rather than during parsing, so the AST keeps the original shape.
// The outer braces matter: Init's variable lives in a scope created for the
// whole statement and popped when the loop ends, the same way executeBlock
// pops a block's scope, so a loop variable never leaks into or shadows the
// enclosing scope permanently.
func (v *stmtVisitor) VisitFor(s *ast.For) any {
	previous := v.in.env
	v.in.env = environment.New(previous)
	defer func() { v.in.env = previous }()

	if s.Init != nil {
		if err := v.in.execute(s.Init); err != nil {
			v.err = err
			return nil
		}
	}
	for {
		if s.Cond != nil {
			cond, err := v.in.evaluate(s.Cond)
			if err != nil {
				v.err = err
				return nil
			}
			if !value.Truthy(cond) {
				return nil
			}
		}
		if err := v.in.execute(s.Body); err != nil {
			v.err = err
			return nil
		}
		if s.Step != nil {
			if _, err := v.in.evaluate(s.Step); err != nil {
				v.err = err
				return nil
			}
		}
	}
}

func (v *stmtVisitor) VisitReturn(s *ast.Return) any {
	var val value.Value = value.NilValue
	if s.Value != nil {
		result, err := v.in.evaluate(s.Value)
		if err != nil {
			v.err = err
			return nil
		}
		val = result
	}
	v.err = &returnSignal{value: val}
	return nil
}
