// Package interp implements the tree-walking evaluator: it executes a
// parsed statement list against an Environment, producing Values and
// side effects (print output, variable mutation, control flow).
package interp

import (
	"io"
	"os"

	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/diagnostics"
	"github.com/akashmaji946/loxo/internal/environment"
	"github.com/akashmaji946/loxo/internal/value"
)

// RuntimeError is the single fatal error an evaluation can produce. Unlike
// the lexer and parser, the evaluator does not accumulate — a runtime
// error aborts execution immediately (§7).
type RuntimeError struct {
	Diagnostic diagnostics.Diagnostic
}

func (e *RuntimeError) Error() string { return e.Diagnostic.Error() }

// newRuntimeError builds a RuntimeError at the given line.
func newRuntimeError(line int, kind diagnostics.Kind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Diagnostic: diagnostics.New(diagnostics.Run, kind, line, format, args...)}
}

// returnSignal is a distinct, non-error control-flow signal used to unwind
// a function body on `return` (§4.3, §9): it is never surfaced to a caller
// outside this package.
type returnSignal struct {
	value value.Value
}

func (r *returnSignal) Error() string { return "return outside function" }

// Interp holds the evaluator's mutable state: the current Environment
// (which changes as blocks and calls push/pop scopes) and the writer that
// `print` writes to.
type Interp struct {
	Globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
}

// New creates an Interp with a fresh global Environment, writing print
// output to os.Stdout by default.
func New() *Interp {
	globals := environment.New(nil)
	return &Interp{Globals: globals, env: globals, Writer: os.Stdout}
}

// SetWriter redirects `print` output, mirroring the evaluator's ability to
// capture output for testing or REPL sessions over a network connection.
func (in *Interp) SetWriter(w io.Writer) { in.Writer = w }

// Run executes a full program (a statement list) against the Interp's
// current environment and returns a RuntimeError if execution aborted.
func (in *Interp) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			if _, isReturn := err.(*returnSignal); isReturn {
				// A `return` outside any function body is a parse-time
				// error in a conforming program (§4.3); reaching here
				// means the caller evaluated a function body's
				// statements directly instead of through Call — a
				// programmer bug, not a user error.
				return newRuntimeError(0, diagnostics.Internal, "return outside function")
			}
			return err
		}
	}
	return nil
}

// Eval evaluates a single expression (the `evaluate` subcommand's
// contract) and returns its Value.
func (in *Interp) Eval(e ast.Expr) (value.Value, error) {
	return in.evaluate(e)
}

func (in *Interp) runtimeErrorf(line int, kind diagnostics.Kind, format string, args ...any) error {
	return newRuntimeError(line, kind, format, args...)
}
