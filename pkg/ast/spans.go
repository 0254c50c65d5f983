package ast

import "github.com/iaminfinityiq/architect/pkg/diagnostics"

// SetSpan annotates the node with the provided span.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}

// At builds a span starting at pos.
func At(pos diagnostics.Position) Span {
	return Span{Start: pos}
}

// Pos returns the start position of node, or the zero position for nil.
func Pos(node Node) diagnostics.Position {
	if node == nil {
		return diagnostics.Position{}
	}
	return node.Span().Start
}
