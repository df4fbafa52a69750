// Package diagnostics defines the structured error model shared by the
// lexer, parser, and evaluator. No stage panics to report a user-facing
// problem: each stage accumulates Diagnostics (or, for the evaluator,
// returns a single fatal one) and the caller decides what to do with them.
package diagnostics

import "fmt"

// Stage identifies which pipeline stage produced a Diagnostic.
type Stage string

const (
	Lex   Stage = "lex"
	Parse Stage = "parse"
	Run   Stage = "run"
)

// Kind enumerates the specific diagnosis within a Stage, per spec §7.
type Kind string

const (
	UnexpectedCharacter   Kind = "unexpected_character"
	UnterminatedString    Kind = "unterminated_string"
	ExpectedToken         Kind = "expected_token"
	ExpectedExpression    Kind = "expected_expression"
	InvalidAssignTarget   Kind = "invalid_assignment_target"
	TooManyArguments      Kind = "too_many_arguments"
	UndefinedVariable     Kind = "undefined_variable"
	OperandTypeMismatch   Kind = "operand_type_mismatch"
	NotCallable           Kind = "not_callable"
	ArityMismatch         Kind = "arity_mismatch"
	ReturnOutsideFunction Kind = "return_outside_function"
	Internal              Kind = "internal_error"
)

// Diagnostic is one reported problem: which stage found it, what kind it
// is, the 1-indexed source line it concerns, and a human-readable message.
type Diagnostic struct {
	Stage   Stage
	Kind    Kind
	Line    int
	Message string
}

// New constructs a Diagnostic with a formatted message.
func New(stage Stage, kind Kind, line int, format string, args ...any) Diagnostic {
	return Diagnostic{Stage: stage, Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped like any other Go error, while still carrying structured fields
// for callers (the CLI, tests) that want the Stage/Kind/Line directly.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[line %d] %s", d.Line, d.Message)
}

// List accumulates Diagnostics from a single pipeline stage. The lexer and
// parser both collect into one of these instead of stopping at the first
// error, so that `tokenize` and `parse` can report every problem in a
// single run.
type List []Diagnostic

// Add appends a new Diagnostic built from the given fields.
func (l *List) Add(stage Stage, kind Kind, line int, format string, args ...any) {
	*l = append(*l, New(stage, kind, line, format, args...))
}

// HasErrors reports whether any diagnostics were recorded.
func (l List) HasErrors() bool {
	return len(l) > 0
}
