package interp

import (
	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/diagnostics"
	"github.com/akashmaji946/loxo/internal/token"
	"github.com/akashmaji946/loxo/internal/value"
)

// evaluate dispatches an expression node to its Value, implementing
// ast.ExprVisitor via a small adapter (exprVisitor) rather than exposing the
// Visit* methods directly on Interp's public surface.
func (in *Interp) evaluate(e ast.Expr) (value.Value, error) {
	v := &exprVisitor{in: in}
	result := e.AcceptExpr(v)
	if v.err != nil {
		return nil, v.err
	}
	return result.(value.Value), nil
}

// exprVisitor adapts ast.ExprVisitor's any-returning methods to carry a
// Go error alongside the Value, since AcceptExpr can't return two values.
type exprVisitor struct {
	in  *Interp
	err error
}

func (v *exprVisitor) fail(err error) any {
	v.err = err
	return value.NilValue
}

func (v *exprVisitor) VisitLiteral(e *ast.Literal) any {
	switch val := e.Value.(type) {
	case nil:
		return value.NilValue
	case bool:
		return value.Bool(val)
	case float64:
		return value.Number{Value: val}
	case string:
		return value.String{Value: val}
	default:
		return value.NilValue
	}
}

func (v *exprVisitor) VisitGrouping(e *ast.Grouping) any {
	inner, err := v.in.evaluate(e.Inner)
	if err != nil {
		return v.fail(err)
	}
	return inner
}

func (v *exprVisitor) VisitVariable(e *ast.Variable) any {
	val, ok := v.in.env.Get(e.Name.Lexeme)
	if !ok {
		return v.fail(v.in.runtimeErrorf(e.Name.Line, diagnostics.UndefinedVariable,
			"Undefined variable '%s'.", e.Name.Lexeme))
	}
	return val
}

func (v *exprVisitor) VisitAssignment(e *ast.Assignment) any {
	val, err := v.in.evaluate(e.Value)
	if err != nil {
		return v.fail(err)
	}
	if !v.in.env.Assign(e.Name.Lexeme, val) {
		return v.fail(v.in.runtimeErrorf(e.Name.Line, diagnostics.UndefinedVariable,
			"Undefined variable '%s'.", e.Name.Lexeme))
	}
	return val
}

func (v *exprVisitor) VisitUnary(e *ast.Unary) any {
	operand, err := v.in.evaluate(e.Operand)
	if err != nil {
		return v.fail(err)
	}
	switch e.Op.Kind {
	case token.Bang:
		return value.Bool(!value.Truthy(operand))
	case token.Minus:
		n, ok := operand.(value.Number)
		if !ok {
			return v.fail(v.in.runtimeErrorf(e.Op.Line, diagnostics.OperandTypeMismatch,
				"Operand must be a number."))
		}
		return value.Number{Value: -n.Value}
	}
	return v.fail(v.in.runtimeErrorf(e.Op.Line, diagnostics.Internal, "unknown unary operator %s", e.Op.Lexeme))
}

func (v *exprVisitor) VisitBinary(e *ast.Binary) any {
	left, err := v.in.evaluate(e.Left)
	if err != nil {
		return v.fail(err)
	}
	right, err := v.in.evaluate(e.Right)
	if err != nil {
		return v.fail(err)
	}

	switch e.Op.Kind {
	case token.BangEqual:
		return value.Bool(!value.Equal(left, right))
	case token.EqualEqual:
		return value.Bool(value.Equal(left, right))
	case token.Plus:
		return v.add(e, left, right)
	case token.Minus:
		l, r, ok := v.numberPair(e.Op.Line, left, right, "Operands must be numbers.")
		if !ok {
			return value.NilValue
		}
		return value.Number{Value: l - r}
	case token.Star:
		l, r, ok := v.numberPair(e.Op.Line, left, right, "Operands must be numbers.")
		if !ok {
			return value.NilValue
		}
		return value.Number{Value: l * r}
	case token.Slash:
		l, r, ok := v.numberPair(e.Op.Line, left, right, "Operands must be numbers.")
		if !ok {
			return value.NilValue
		}
		return value.Number{Value: l / r} // division by zero yields +/-Inf, not an error
	case token.Greater:
		l, r, ok := v.numberPair(e.Op.Line, left, right, "Operands must be numbers.")
		if !ok {
			return value.NilValue
		}
		return value.Bool(l > r)
	case token.GreaterEq:
		l, r, ok := v.numberPair(e.Op.Line, left, right, "Operands must be numbers.")
		if !ok {
			return value.NilValue
		}
		return value.Bool(l >= r)
	case token.Less:
		l, r, ok := v.numberPair(e.Op.Line, left, right, "Operands must be numbers.")
		if !ok {
			return value.NilValue
		}
		return value.Bool(l < r)
	case token.LessEqual:
		l, r, ok := v.numberPair(e.Op.Line, left, right, "Operands must be numbers.")
		if !ok {
			return value.NilValue
		}
		return value.Bool(l <= r)
	}
	return v.fail(v.in.runtimeErrorf(e.Op.Line, diagnostics.Internal, "unknown binary operator %s", e.Op.Lexeme))
}

// add implements `+`: numeric addition, string concatenation, or a
// mismatch error — it never coerces between the two.
func (v *exprVisitor) add(e *ast.Binary, left, right value.Value) any {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return value.Number{Value: ln.Value + rn.Value}
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return value.String{Value: ls.Value + rs.Value}
		}
	}
	return v.fail(v.in.runtimeErrorf(e.Op.Line, diagnostics.OperandTypeMismatch,
		"Operands must be two numbers or two strings."))
}

// numberPair requires both operands to be Number, recording a failure
// (via v.fail) and returning ok=false otherwise.
func (v *exprVisitor) numberPair(line int, left, right value.Value, message string) (float64, float64, bool) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		v.fail(v.in.runtimeErrorf(line, diagnostics.OperandTypeMismatch, "%s", message))
		return 0, 0, false
	}
	return ln.Value, rn.Value, true
}

func (v *exprVisitor) VisitLogical(e *ast.Logical) any {
	left, err := v.in.evaluate(e.Left)
	if err != nil {
		return v.fail(err)
	}
	if e.Op.Kind == token.Or {
		if value.Truthy(left) {
			return left
		}
	} else { // AND
		if !value.Truthy(left) {
			return left
		}
	}
	right, err := v.in.evaluate(e.Right)
	if err != nil {
		return v.fail(err)
	}
	return right
}

func (v *exprVisitor) VisitCall(e *ast.Call) any {
	callee, err := v.in.evaluate(e.Callee)
	if err != nil {
		return v.fail(err)
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		av, err := v.in.evaluate(a)
		if err != nil {
			return v.fail(err)
		}
		args = append(args, av)
	}

	fn, ok := callee.(value.Callable)
	if !ok {
		return v.fail(v.in.runtimeErrorf(e.Paren.Line, diagnostics.NotCallable,
			"Can only call functions."))
	}
	if fn.Arity() != len(args) {
		return v.fail(v.in.runtimeErrorf(e.Paren.Line, diagnostics.ArityMismatch,
			"Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	result, err := v.in.call(fn, args)
	if err != nil {
		return v.fail(err)
	}
	return result
}
