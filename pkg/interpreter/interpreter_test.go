package interpreter

import (
	"testing"

	"github.com/iaminfinityiq/architect/pkg/ast"
	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/parser"
	"github.com/iaminfinityiq/architect/pkg/runtime"
	"github.com/iaminfinityiq/architect/pkg/token"
)

func evalSource(t *testing.T, src string) (runtime.Value, error) {
	t.Helper()
	program, err := parser.ParseSource(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return New().EvaluateProgram(program)
}

func expectDiagnostic(t *testing.T, err error, kind diagnostics.Kind, message string) *diagnostics.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s %q, got nil", kind, message)
	}
	diag, ok := diagnostics.As(err)
	if !ok {
		t.Fatalf("expected diagnostics error, got %T: %v", err, err)
	}
	if diag.Kind != kind || diag.Message != message {
		t.Fatalf("expected %s %q, got %s %q", kind, message, diag.Kind, diag.Message)
	}
	return diag
}

func TestProgramReturnsLastValue(t *testing.T) {
	interp := New()
	program := ast.Prog(
		ast.Build("x", ast.Num(2)),
		ast.Bin(ast.ID("x"), token.Multiply, ast.Num(4)),
	)
	val, err := interp.EvaluateProgram(program)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if val.String() != "8" {
		t.Fatalf("expected 8, got %s", val)
	}
	if v, ok := interp.GlobalEnvironment().Lookup("x"); !ok || v.String() != "2" {
		t.Fatalf("expected x bound to 2, got %v", v)
	}
}

func TestProgramSkipsVoidResults(t *testing.T) {
	val, err := New().EvaluateProgram(ast.Prog(
		ast.Build("x", ast.Num(1)),
		ast.Fix("x", ast.Num(2)),
	))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if val.String() != "1" {
		t.Fatalf("update should not replace the last value, got %s", val)
	}

	val, err = New().EvaluateProgram(ast.Prog())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if _, ok := val.(runtime.NullValue); !ok {
		t.Fatalf("empty program should yield null, got %#v", val)
	}
}

func TestUpdateMutatesBinding(t *testing.T) {
	val, err := evalSource(t, "build frame x with screw 1\nfix frame x with screw x + 41\nx")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if val.String() != "42" {
		t.Fatalf("expected 42, got %s", val)
	}
}

func TestUpdateReachesParentScope(t *testing.T) {
	interp := New()
	root := interp.GlobalEnvironment()
	root.Declare("x", runtime.IntegerFromInt64(1))
	child := root.Extend()
	val, err := interp.Evaluate(ast.Fix("x", ast.Num(5)), child)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if _, ok := val.(runtime.VoidValue); !ok {
		t.Fatalf("update should yield void, got %#v", val)
	}
	if v, _ := root.Lookup("x"); v.String() != "5" {
		t.Fatalf("expected parent binding updated, got %s", v)
	}
}

func TestVariableErrors(t *testing.T) {
	_, err := evalSource(t, "build frame x with screw 1\nbuild frame x with screw 2")
	diag := expectDiagnostic(t, err, diagnostics.KindVariable, "Cannot assign variable x because it exists.")
	if diag.Pos != (diagnostics.Position{Line: 2, Column: 1}) {
		t.Fatalf("unexpected position %v", diag.Pos)
	}

	_, err = evalSource(t, "fix frame y with screw 1")
	expectDiagnostic(t, err, diagnostics.KindVariable, "Cannot update variable y because it does not exist.")

	_, err = evalSource(t, "1 + beam")
	diag = expectDiagnostic(t, err, diagnostics.KindVariable, "Cannot get the value of variable beam because it does not exist.")
	if diag.Pos != (diagnostics.Position{Line: 1, Column: 5}) {
		t.Fatalf("unexpected position %v", diag.Pos)
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2 + 3 * 4", "14"},
		{"2 ^ 3 ^ 2", "512"},
		{"6 / 3", "2"},
		{"7 / 2", "3.5"},
		{"(2 + 3) * 4", "20"},
		{"10 - 4 - 3", "3"},
		{"0.1 + 0.2", "0.30000000000000004"},
		{"1.5 + 1.5", "3"},
		{"10 ^ 30", "1000000000000000000000000000000"},
		{"2 ^ 0 - 1", "0"},
		{"2 ^ -1", "0.5"},
		{"4 ^ 0.5", "2"},
		{"1 / 100000", "1e-05"},
		{"-1 ^ 1000001", "-1"},
		{"-1 ^ 1000000000000", "1"},
		{"0 ^ 0", "1"},
		{"--5", "5"},
		{"-(2 - 5)", "3"},
		{"-true", "false"},
		{"+false", "false"},
		{"true", "true"},
		{"null", "null"},
	}
	for _, tc := range cases {
		val, err := evalSource(t, tc.src)
		if err != nil {
			t.Fatalf("%q: %v", tc.src, err)
		}
		if val.String() != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.src, tc.want, val)
		}
	}
}

func TestDivisionProducesIntegersWhenExact(t *testing.T) {
	val, err := evalSource(t, "6 / 3")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	num, ok := val.(runtime.NumberValue)
	if !ok || !num.IsInteger() {
		t.Fatalf("expected an integral number, got %#v", val)
	}
}

func TestMathErrors(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"5 / 0", "Cannot divide 5 by 0"},
		{"5.5 / (1 - 1)", "Cannot divide 5.5 by 0"},
		{"0 ^ -1", "Cannot raise 0 to a negative power"},
		{"(0 - 8) ^ 0.5", "Cannot raise -8 to a fractional power"},
		{"2 ^ 2000000", "Result of 2 ^ 2000000 is too large"},
	}
	for _, tc := range cases {
		_, err := evalSource(t, tc.src)
		expectDiagnostic(t, err, diagnostics.KindMath, tc.msg)
	}
}

func TestDataTypeErrors(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"true + 1", "Unexpected operation between boolean and number"},
		{"1 * null", "Unexpected operation between number and null"},
		{"true ^ false", "Unexpected operation between boolean and boolean"},
		{"-null", "Unexpected unary operation for 'null'"},
	}
	for _, tc := range cases {
		_, err := evalSource(t, tc.src)
		expectDiagnostic(t, err, diagnostics.KindDataType, tc.msg)
	}
}

func TestOperandsEvaluateBeforeTypeCheck(t *testing.T) {
	_, err := evalSource(t, "true + missing")
	expectDiagnostic(t, err, diagnostics.KindVariable, "Cannot get the value of variable missing because it does not exist.")
}

type strayNode struct {
	*ast.NullLiteral
}

func TestUnsupportedNode(t *testing.T) {
	interp := New()
	_, err := interp.Evaluate(strayNode{ast.Null()}, interp.GlobalEnvironment())
	expectDiagnostic(t, err, diagnostics.KindInterpreter, "This AST node has not been setup for interpretation yet: (NULL LITERAL)")

	_, err = interp.Evaluate(nil, interp.GlobalEnvironment())
	expectDiagnostic(t, err, diagnostics.KindInterpreter, "This AST node has not been setup for interpretation yet: <nil>")
}

func TestNewWithEnvironmentEvaluatesInCallerScope(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	interp := NewWithEnvironment(env)
	if interp.GlobalEnvironment() != env {
		t.Fatalf("expected the supplied environment to be global")
	}
	if _, err := interp.EvaluateProgram(ast.Prog(ast.Build("beam", ast.Num(3)))); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if v, ok := env.Lookup("beam"); !ok || v.String() != "3" {
		t.Fatalf("expected beam declared in the supplied environment, got %v", v)
	}
	if NewWithEnvironment(nil).GlobalEnvironment() == nil {
		t.Fatalf("nil environment should fall back to a fresh one")
	}
}
