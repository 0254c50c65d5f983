package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iaminfinityiq/architect/pkg/token"
)

// The String forms below are the debug rendering printed before a program runs.

func (p *Program) String() string {
	parts := make([]string, len(p.Statements))
	for i, stmt := range p.Statements {
		parts[i] = stmt.String()
	}
	return "(PROGRAM STATEMENT [\n\t" + strings.Join(parts, ";\n\t") + "\n])"
}

func (n *NumberLiteral) String() string {
	return "(NUMBER LITERAL " + strconv.FormatFloat(n.Value, 'g', -1, 64) + ")"
}

func (n *BooleanLiteral) String() string {
	return fmt.Sprintf("(BOOLEAN LITERAL %t)", n.Value)
}

func (*NullLiteral) String() string {
	return "(NULL LITERAL)"
}

func (n *Identifier) String() string {
	return "(IDENTIFIER " + n.Name + ")"
}

func (n *UnaryExpression) String() string {
	return fmt.Sprintf("(UNARY EXPRESSION %s%s)", signSymbol(n.Sign), n.Operand)
}

func (n *BinaryExpression) String() string {
	return fmt.Sprintf("(BINARY EXPRESSION %s %s %s)", n.Left, n.Operator, n.Right)
}

func (n *AssignmentStatement) String() string {
	return fmt.Sprintf("(ASSIGNMENT STATEMENT: %s assigned with %s)", n.Name, n.Value)
}

func (n *UpdateStatement) String() string {
	return fmt.Sprintf("(UPDATE STATEMENT: %s updated with %s)", n.Name, n.Value)
}

func signSymbol(sign token.Kind) string {
	if sign == token.Minus {
		return "-"
	}
	return "+"
}
