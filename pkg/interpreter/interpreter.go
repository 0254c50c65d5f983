package interpreter

import (
	"github.com/iaminfinityiq/architect/pkg/ast"
	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/runtime"
)

// Interpreter drives evaluation of Architect AST nodes.
type Interpreter struct {
	global *runtime.Environment
}

// New returns an interpreter with an empty global environment.
func New() *Interpreter {
	return &Interpreter{global: runtime.NewEnvironment(nil)}
}

// NewWithEnvironment returns an interpreter whose global environment is env.
func NewWithEnvironment(env *runtime.Environment) *Interpreter {
	if env == nil {
		return New()
	}
	return &Interpreter{global: env}
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// EvaluateProgram runs program against the global environment.
func (i *Interpreter) EvaluateProgram(program *ast.Program) (runtime.Value, error) {
	return i.Evaluate(program, i.global)
}

// Evaluate computes the value of node in env.
func (i *Interpreter) Evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return i.evaluateProgram(n, env)
	case *ast.AssignmentStatement:
		return i.evaluateAssignment(n, env)
	case *ast.UpdateStatement:
		return i.evaluateUpdate(n, env)
	case ast.Expression:
		return i.evaluateExpression(n, env)
	default:
		return nil, unsupportedNode(node)
	}
}

// evaluateProgram returns the value of the last statement that produced one.
func (i *Interpreter) evaluateProgram(program *ast.Program, env *runtime.Environment) (runtime.Value, error) {
	var last runtime.Value = runtime.NullValue{}
	for _, stmt := range program.Statements {
		val, err := i.Evaluate(stmt, env)
		if err != nil {
			return nil, err
		}
		if _, void := val.(runtime.VoidValue); void {
			continue
		}
		last = val
	}
	return last, nil
}

func unsupportedNode(node ast.Node) error {
	if node == nil {
		return diagnostics.Interpreter(diagnostics.Position{}, "This AST node has not been setup for interpretation yet: <nil>")
	}
	return diagnostics.Interpreter(ast.Pos(node), "This AST node has not been setup for interpretation yet: %s", node)
}
