package interpreter

import (
	"github.com/iaminfinityiq/architect/pkg/ast"
	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/runtime"
	"github.com/iaminfinityiq/architect/pkg/token"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NewNumber(n.Value), nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NullLiteral:
		return runtime.NullValue{}, nil
	case *ast.Identifier:
		val, ok := env.Lookup(n.Name)
		if !ok {
			return nil, diagnostics.Variable(ast.Pos(n), "Cannot get the value of variable %s because it does not exist.", n.Name)
		}
		return val, nil
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	default:
		return nil, unsupportedNode(node)
	}
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	negate := expr.Sign == token.Minus
	switch v := operand.(type) {
	case runtime.NumberValue:
		if !negate {
			return v, nil
		}
		return negateNumber(v), nil
	case runtime.BoolValue:
		if !negate {
			return v, nil
		}
		return runtime.BoolValue{Val: !v.Val}, nil
	default:
		return nil, diagnostics.DataType(ast.Pos(expr), "Unexpected unary operation for '%s'", runtime.TypeName(operand))
	}
}

// evaluateBinaryExpression evaluates both operands, left first, before
// applying the operator.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	pos := ast.Pos(expr)
	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return nil, diagnostics.DataType(pos, "Unexpected operation between %s and %s", runtime.TypeName(left), runtime.TypeName(right))
	}
	switch expr.Operator {
	case token.Plus:
		return addNumbers(l, r), nil
	case token.Minus:
		return subtractNumbers(l, r), nil
	case token.Multiply:
		return multiplyNumbers(l, r), nil
	case token.Divide:
		return divideNumbers(pos, l, r)
	case token.Power:
		return powerNumbers(pos, l, r)
	default:
		return nil, unsupportedNode(expr)
	}
}
