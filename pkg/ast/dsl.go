package ast

import "github.com/iaminfinityiq/architect/pkg/token"

// Shorthand constructors, mostly used by tests.

func Prog(statements ...Statement) *Program {
	return NewProgram(statements)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Null() *NullLiteral {
	return NewNullLiteral()
}

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression(token.Minus, operand)
}

func Plus(operand Expression) *UnaryExpression {
	return NewUnaryExpression(token.Plus, operand)
}

func Bin(left Expression, operator token.Kind, right Expression) *BinaryExpression {
	return NewBinaryExpression(left, operator, right)
}

func Build(name string, value Expression) *AssignmentStatement {
	return NewAssignmentStatement(name, value)
}

func Fix(name string, value Expression) *UpdateStatement {
	return NewUpdateStatement(name, value)
}
