package interp

import (
	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/environment"
	"github.com/akashmaji946/loxo/internal/value"
)

// Function is a user-defined Lox function: it closes over the environment
// active at its declaration site, so nested functions see their enclosing
// locals even after that scope's declaring block has returned.
type Function struct {
	decl    *ast.Function
	closure *environment.Environment
}

func newFunction(decl *ast.Function, closure *environment.Environment) *Function {
	return &Function{decl: decl, closure: closure}
}

func (f *Function) Type() value.Type { return value.CallableType }
func (f *Function) Name() string     { return f.decl.Name.Lexeme }
func (f *Function) Arity() int       { return len(f.decl.Params) }
func (f *Function) String() string   { return value.CallableOf(f) }

func (v *stmtVisitor) VisitFunction(s *ast.Function) any {
	fn := newFunction(s, v.in.env)
	v.in.env.Define(s.Name.Lexeme, fn)
	return nil
}

// call runs fn's body in a fresh scope, enclosed by its closure (not by the
// caller's environment — that's what makes it a closure rather than
// dynamic scoping), binding each parameter to its argument in order.
func (in *Interp) call(callee value.Callable, args []value.Value) (value.Value, error) {
	fn, ok := callee.(*Function)
	if !ok {
		// Built-in callables never reach here in this interpreter; kept for
		// forward compatibility with natively-implemented functions.
		return value.NilValue, nil
	}

	scope := environment.New(fn.closure)
	for i, param := range fn.decl.Params {
		scope.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(fn.decl.Body.Statements, scope)
	if err == nil {
		return value.NilValue, nil
	}
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	return nil, err
}
