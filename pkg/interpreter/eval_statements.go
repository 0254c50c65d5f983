package interpreter

import (
	"github.com/iaminfinityiq/architect/pkg/ast"
	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/runtime"
)

// evaluateAssignment declares a new binding in the current scope.
func (i *Interpreter) evaluateAssignment(stmt *ast.AssignmentStatement, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return nil, err
	}
	if !env.Declare(stmt.Name, val) {
		return nil, diagnostics.Variable(ast.Pos(stmt), "Cannot assign variable %s because it exists.", stmt.Name)
	}
	return val, nil
}

// evaluateUpdate rebinds an existing name in the scope that owns it.
func (i *Interpreter) evaluateUpdate(stmt *ast.UpdateStatement, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return nil, err
	}
	if !env.Update(stmt.Name, val) {
		return nil, diagnostics.Variable(ast.Pos(stmt), "Cannot update variable %s because it does not exist.", stmt.Name)
	}
	return runtime.VoidValue{}, nil
}
