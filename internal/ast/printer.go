package ast

import (
	"bytes"
	"fmt"
	"strconv"
)

// Printer renders an expression in fully-parenthesized prefix form, the
// `parse` subcommand's output format: `(op a b)` for a Binary, `(group x)`
// for a Grouping, a bare literal or name for a Literal or Variable, and
// likewise parenthesized forms for the other expression variants.
//
// Printer only implements ExprVisitor: the `parse` subcommand's contract is
// to print a single parsed expression, not a full statement program (§6).
type Printer struct {
	buf bytes.Buffer
}

// Print renders e and returns the result.
func Print(e Expr) string {
	p := &Printer{}
	e.AcceptExpr(p)
	return p.buf.String()
}

func (p *Printer) parenthesize(name string, exprs ...Expr) any {
	p.buf.WriteByte('(')
	p.buf.WriteString(name)
	for _, e := range exprs {
		p.buf.WriteByte(' ')
		e.AcceptExpr(p)
	}
	p.buf.WriteByte(')')
	return nil
}

func (p *Printer) VisitLiteral(e *Literal) any {
	p.buf.WriteString(literalText(e.Value))
	return nil
}

func (p *Printer) VisitUnary(e *Unary) any {
	return p.parenthesize(e.Op.Lexeme, e.Operand)
}

func (p *Printer) VisitBinary(e *Binary) any {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitGrouping(e *Grouping) any {
	return p.parenthesize("group", e.Inner)
}

func (p *Printer) VisitVariable(e *Variable) any {
	p.buf.WriteString(e.Name.Lexeme)
	return nil
}

func (p *Printer) VisitAssignment(e *Assignment) any {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value)
}

func (p *Printer) VisitLogical(e *Logical) any {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitCall(e *Call) any {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Args...)...)
}

// literalText renders a Literal's constant value the way the printer
// expects a Number shown: "N.0" if integral, else shortest round-trip.
func literalText(v any) string {
	switch vv := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(vv)
	case string:
		return vv
	case float64:
		if vv == float64(int64(vv)) {
			return fmt.Sprintf("%.1f", vv)
		}
		return strconv.FormatFloat(vv, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", vv)
	}
}
