package token

import (
	"fmt"

	"github.com/iaminfinityiq/architect/pkg/diagnostics"
)

// Kind represents the type of a token.
type Kind int

const (
	Plus Kind = iota
	Minus
	Multiply
	Divide
	Power
	OpenParen
	CloseParen
	Newline
	EOF
	Number
	Identifier
	Build
	Frame
	Fix
	With
	Screw
	True
	False
	Null
	Decision
	If
	Else
)

var kindNames = [...]string{
	Plus:       "Plus",
	Minus:      "Minus",
	Multiply:   "Multiply",
	Divide:     "Divide",
	Power:      "Power",
	OpenParen:  "OpenParen",
	CloseParen: "CloseParen",
	Newline:    "Newline",
	EOF:        "EOF",
	Number:     "Number",
	Identifier: "Identifier",
	Build:      "Build",
	Frame:      "Frame",
	Fix:        "Fix",
	With:       "With",
	Screw:      "Screw",
	True:       "True",
	False:      "False",
	Null:       "Null",
	Decision:   "Decision",
	If:         "If",
	Else:       "Else",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText lets kinds appear by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Keywords maps reserved words to their token kinds.
var Keywords = map[string]Kind{
	"build":    Build,
	"frame":    Frame,
	"fix":      Fix,
	"with":     With,
	"screw":    Screw,
	"true":     True,
	"false":    False,
	"null":     Null,
	"decision": Decision,
	"if":       If,
	"else":     Else,
}

// Lookup returns the keyword kind for word, or Identifier.
func Lookup(word string) Kind {
	if kind, ok := Keywords[word]; ok {
		return kind
	}
	return Identifier
}

// Token is a classified lexeme. Text is empty only for EOF.
type Token struct {
	Kind Kind                 `json:"kind" yaml:"kind"`
	Text string               `json:"text" yaml:"text"`
	Pos  diagnostics.Position `json:"pos" yaml:"pos"`
}

// Is reports whether the token's kind is one of kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsEnd reports whether the token terminates a statement.
func (t Token) IsEnd() bool {
	return t.Kind == EOF || t.Kind == Newline
}

func (t Token) String() string {
	if t.IsEnd() || t.Text == "" {
		return t.Kind.String()
	}
	return t.Text
}
