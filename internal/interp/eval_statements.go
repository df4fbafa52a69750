package interp

import (
	"fmt"

	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/environment"
	"github.com/akashmaji946/loxo/internal/value"
)

// execute dispatches a statement node for its side effects. A non-nil
// error is either a *RuntimeError (propagate to the caller and abort) or a
// *returnSignal (propagate until a function call catches it).
func (in *Interp) execute(s ast.Stmt) error {
	v := &stmtVisitor{in: in}
	s.AcceptStmt(v)
	return v.err
}

// stmtVisitor adapts ast.StmtVisitor the same way exprVisitor adapts
// ast.ExprVisitor: Accept's `any` return is unused, the Go error return
// comes back through the visitor's err field.
type stmtVisitor struct {
	in  *Interp
	err error
}

func (v *stmtVisitor) VisitExpression(s *ast.Expression) any {
	_, v.err = v.in.evaluate(s.Expr)
	return nil
}

func (v *stmtVisitor) VisitPrint(s *ast.Print) any {
	val, err := v.in.evaluate(s.Expr)
	if err != nil {
		v.err = err
		return nil
	}
	fmt.Fprintln(v.in.Writer, display(val))
	return nil
}

// display renders a Value for `print`/`evaluate` output (§6): identical to
// Value.String() for every variant except Callable, which needs its name.
func display(v value.Value) string {
	if c, ok := v.(value.Callable); ok {
		return value.CallableOf(c)
	}
	return v.String()
}

func (v *stmtVisitor) VisitVar(s *ast.Var) any {
	var val value.Value = value.NilValue
	if s.Init != nil {
		var err error
		val, err = v.in.evaluate(s.Init)
		if err != nil {
			v.err = err
			return nil
		}
	}
	v.in.env.Define(s.Name.Lexeme, val)
	return nil
}

func (v *stmtVisitor) VisitBlock(s *ast.Block) any {
	v.err = v.in.executeBlock(s.Statements, environment.New(v.in.env))
	return nil
}

// executeBlock runs stmts in a fresh scope enclosed by scope, always
// restoring the interpreter's previous environment on the way out — even
// when a *returnSignal or *RuntimeError is unwinding through it, since Go's
// defer guarantees that regardless of how this function returns.
func (in *Interp) executeBlock(stmts []ast.Stmt, scope *environment.Environment) error {
	previous := in.env
	in.env = scope
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
