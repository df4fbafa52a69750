package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxo/internal/lexer"
	"github.com/akashmaji946/loxo/internal/parser"
)

func runProgram(t *testing.T, src string) (string, error) {
	t.Helper()
	lx := lexer.New(src)
	tokens := lx.ScanTokens()
	require.False(t, lx.Diagnostics().HasErrors())

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	require.False(t, p.Diagnostics().HasErrors(), "unexpected parse errors: %v", p.Diagnostics())

	var out bytes.Buffer
	it := New()
	it.SetWriter(&out)
	err := it.Run(stmts)
	return out.String(), err
}

func evalExpr(t *testing.T, src string) (string, error) {
	t.Helper()
	lx := lexer.New(src)
	tokens := lx.ScanTokens()
	require.False(t, lx.Diagnostics().HasErrors())

	p := parser.New(tokens)
	expr := p.ParseExpression()
	require.False(t, p.Diagnostics().HasErrors())

	it := New()
	val, err := it.Eval(expr)
	if err != nil {
		return "", err
	}
	return val.String(), nil
}

func TestRun_PrintArithmetic(t *testing.T) {
	out, err := runProgram(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestRun_StringConcatenation(t *testing.T) {
	out, err := runProgram(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestRun_RuntimeErrorOperandMismatch(t *testing.T) {
	_, err := runProgram(t, `print "a" + 1;`)
	require.Error(t, err)
	re, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Equal(t, "Operands must be two numbers or two strings.", re.Diagnostic.Message)
	assert.Equal(t, 1, re.Diagnostic.Line)
}

func TestRun_VariableScopeAndAssignment(t *testing.T) {
	out, err := runProgram(t, `
var x = 1;
{
  var x = 2;
  print x;
}
print x;
`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestRun_AssignmentToUndefinedIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `x = 1;`)
	require.Error(t, err)
	re, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, re.Diagnostic.Message, "Undefined variable")
}

func TestRun_IfElse(t *testing.T) {
	out, err := runProgram(t, `
if (1 < 2) print "yes"; else print "no";
`)
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestRun_WhileLoop(t *testing.T) {
	out, err := runProgram(t, `
var i = 0;
while (i < 3) {
  print i;
  i = i + 1;
}
`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestRun_ForLoopDesugars(t *testing.T) {
	out, err := runProgram(t, `
for (var i = 0; i < 3; i = i + 1) print i;
`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestRun_ForLoopVariableDoesNotLeakOrShadowPermanently(t *testing.T) {
	out, err := runProgram(t, `
var i = "outer";
for (var i = 0; i < 1; i = i + 1) {}
print i;
`)
	require.NoError(t, err)
	assert.Equal(t, "outer\n", out)
}

func TestRun_FunctionCallAndReturn(t *testing.T) {
	out, err := runProgram(t, `
fun add(a, b) {
  return a + b;
}
print add(2, 3);
`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestRun_ClosureCapturesDefiningEnvironment(t *testing.T) {
	out, err := runProgram(t, `
fun makeCounter() {
  var count = 0;
  fun counter() {
    count = count + 1;
    return count;
  }
  return counter;
}
var c = makeCounter();
print c();
print c();
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestRun_CallArityMismatch(t *testing.T) {
	_, err := runProgram(t, `
fun f(a) { return a; }
f(1, 2);
`)
	require.Error(t, err)
	re, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, re.Diagnostic.Message, "Expected 1 arguments but got 2")
}

func TestRun_CallNotCallable(t *testing.T) {
	_, err := runProgram(t, `
var x = 1;
x();
`)
	require.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok)
}

func TestEval_LogicalShortCircuitReturnsOperand(t *testing.T) {
	result, err := evalExpr(t, `nil or "fallback"`)
	require.NoError(t, err)
	assert.Equal(t, "fallback", result)
}

func TestEval_DivisionByZeroYieldsInfinity(t *testing.T) {
	result, err := evalExpr(t, `1 / 0`)
	require.NoError(t, err)
	assert.Equal(t, "+Inf", result)
}

func TestFunction_PrintsAsCallableForm(t *testing.T) {
	out, err := runProgram(t, `
fun f() {}
print f;
`)
	require.NoError(t, err)
	assert.Equal(t, "<fn f>\n", out)
}
