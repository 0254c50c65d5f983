package diagnostics

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a pipeline error.
type Kind int

const (
	KindSyntax Kind = iota + 1
	KindVariable
	KindMath
	KindDataType
	KindInterpreter
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "SyntaxError"
	case KindVariable:
		return "VariableError"
	case KindMath:
		return "MathError"
	case KindDataType:
		return "DataTypeError"
	case KindInterpreter:
		return "InterpreterError"
	default:
		return fmt.Sprintf("UnknownError(%d)", int(k))
	}
}

// ExitCode is the process status the CLI reports for the category.
func (k Kind) ExitCode() int {
	switch k {
	case KindSyntax:
		return 1
	case KindVariable:
		return 2
	case KindMath:
		return 3
	case KindDataType:
		return 4
	case KindInterpreter:
		return 5
	default:
		return 1
	}
}

// ParseKind maps a category label such as "MathError" back to its Kind.
func ParseKind(label string) (Kind, bool) {
	for k := KindSyntax; k <= KindInterpreter; k++ {
		if k.String() == label {
			return k, true
		}
	}
	return 0, false
}

// Position is a 1-based line/column pair. The zero value means unknown.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// IsValid reports whether the position points into the source.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is the structured failure returned by every pipeline stage.
type Error struct {
	Kind    Kind
	Message string
	Pos     Position
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// Located renders the error with its source position when one is known.
func (e *Error) Located() string {
	if !e.Pos.IsValid() {
		return e.Error()
	}
	return fmt.Sprintf("%s (at %s)", e.Error(), e.Pos)
}

func newError(kind Kind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func Syntax(pos Position, format string, args ...any) *Error {
	return newError(KindSyntax, pos, format, args...)
}

func Variable(pos Position, format string, args ...any) *Error {
	return newError(KindVariable, pos, format, args...)
}

func Math(pos Position, format string, args ...any) *Error {
	return newError(KindMath, pos, format, args...)
}

func DataType(pos Position, format string, args ...any) *Error {
	return newError(KindDataType, pos, format, args...)
}

func Interpreter(pos Position, format string, args ...any) *Error {
	return newError(KindInterpreter, pos, format, args...)
}

// As extracts a pipeline error from err's chain.
func As(err error) (*Error, bool) {
	var diag *Error
	if errors.As(err, &diag) {
		return diag, true
	}
	return nil, false
}

// ExitCode returns the taxonomy code for err, 0 for nil and 1 for errors
// that did not originate in the pipeline.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if diag, ok := As(err); ok {
		return diag.Kind.ExitCode()
	}
	return 1
}
