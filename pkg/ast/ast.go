package ast

import (
	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/token"
)

type NodeType string

const (
	NodeProgram             NodeType = "Program"
	NodeNumberLiteral       NodeType = "NumberLiteral"
	NodeBooleanLiteral      NodeType = "BooleanLiteral"
	NodeNullLiteral         NodeType = "NullLiteral"
	NodeIdentifier          NodeType = "Identifier"
	NodeUnaryExpression     NodeType = "UnaryExpression"
	NodeBinaryExpression    NodeType = "BinaryExpression"
	NodeAssignmentStatement NodeType = "AssignmentStatement"
	NodeUpdateStatement     NodeType = "UpdateStatement"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	String() string
	isNode()
}

// Span records where a node starts in the source.
type Span struct {
	Start diagnostics.Position `json:"start"`
}

type nodeImpl struct {
	Type NodeType `json:"type" yaml:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Statement is anything that may appear at the top level of a program.
type Statement interface {
	Node
	statementNode()
}

// Expression is a statement that produces a value.
type Expression interface {
	Statement
	expressionNode()
}

// Program

type Program struct {
	nodeImpl `yaml:",inline"`

	Statements []Statement `json:"statements" yaml:"statements"`
}

func NewProgram(statements []Statement) *Program {
	if statements == nil {
		statements = []Statement{}
	}
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}

// Literals

type NumberLiteral struct {
	nodeImpl `yaml:",inline"`

	Value float64 `json:"value" yaml:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

func (*NumberLiteral) statementNode()  {}
func (*NumberLiteral) expressionNode() {}

type BooleanLiteral struct {
	nodeImpl `yaml:",inline"`

	Value bool `json:"value" yaml:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

func (*BooleanLiteral) statementNode()  {}
func (*BooleanLiteral) expressionNode() {}

type NullLiteral struct {
	nodeImpl `yaml:",inline"`
}

func NewNullLiteral() *NullLiteral {
	return &NullLiteral{nodeImpl: newNodeImpl(NodeNullLiteral)}
}

func (*NullLiteral) statementNode()  {}
func (*NullLiteral) expressionNode() {}

// Identifier

type Identifier struct {
	nodeImpl `yaml:",inline"`

	Name string `json:"name" yaml:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

func (*Identifier) statementNode()  {}
func (*Identifier) expressionNode() {}

// Operators

// UnaryExpression applies an accumulated sign; Sign is token.Plus or token.Minus.
type UnaryExpression struct {
	nodeImpl `yaml:",inline"`

	Sign    token.Kind `json:"sign" yaml:"sign"`
	Operand Expression `json:"operand" yaml:"operand"`
}

func NewUnaryExpression(sign token.Kind, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Sign: sign, Operand: operand}
}

func (*UnaryExpression) statementNode()  {}
func (*UnaryExpression) expressionNode() {}

type BinaryExpression struct {
	nodeImpl `yaml:",inline"`

	Left     Expression `json:"left" yaml:"left"`
	Operator token.Kind `json:"operator" yaml:"operator"`
	Right    Expression `json:"right" yaml:"right"`
}

func NewBinaryExpression(left Expression, operator token.Kind, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Left: left, Operator: operator, Right: right}
}

func (*BinaryExpression) statementNode()  {}
func (*BinaryExpression) expressionNode() {}

// Variable statements

// AssignmentStatement declares a new binding in the current scope.
type AssignmentStatement struct {
	nodeImpl `yaml:",inline"`

	Name  string     `json:"name" yaml:"name"`
	Value Expression `json:"value" yaml:"value"`
}

func NewAssignmentStatement(name string, value Expression) *AssignmentStatement {
	return &AssignmentStatement{nodeImpl: newNodeImpl(NodeAssignmentStatement), Name: name, Value: value}
}

func (*AssignmentStatement) statementNode() {}

// UpdateStatement overwrites an existing binding wherever it was declared.
type UpdateStatement struct {
	nodeImpl `yaml:",inline"`

	Name  string     `json:"name" yaml:"name"`
	Value Expression `json:"value" yaml:"value"`
}

func NewUpdateStatement(name string, value Expression) *UpdateStatement {
	return &UpdateStatement{nodeImpl: newNodeImpl(NodeUpdateStatement), Name: name, Value: value}
}

func (*UpdateStatement) statementNode() {}
