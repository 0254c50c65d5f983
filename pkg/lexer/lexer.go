// Package lexer turns Architect source text into a flat token stream.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/token"
)

var singleChar = map[byte]token.Kind{
	'+':  token.Plus,
	'-':  token.Minus,
	'*':  token.Multiply,
	'/':  token.Divide,
	'^':  token.Power,
	'(':  token.OpenParen,
	')':  token.CloseParen,
	'\n': token.Newline,
}

type lexer struct {
	src  string
	i    int
	line int
	col  int
	out  []token.Token
}

// Tokenize scans src in a single pass. The returned stream always ends with
// exactly one EOF token; on error no tokens are returned.
func Tokenize(src string) ([]token.Token, error) {
	l := &lexer{src: src, line: 1, col: 1}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.out, nil
}

func (l *lexer) run() error {
	for l.i < len(l.src) {
		ch := l.src[l.i]
		switch {
		case ch == '$':
			// Comment runs up to, not including, the newline.
			for l.i < len(l.src) && l.src[l.i] != '\n' {
				l.advance()
			}
		case ch == ' ' || ch == '\t':
			l.advance()
		case isDigit(ch):
			if err := l.number(); err != nil {
				return err
			}
		case isIdentStart(ch):
			l.word()
		default:
			kind, ok := singleChar[ch]
			if !ok {
				r, _ := utf8.DecodeRuneInString(l.src[l.i:])
				return diagnostics.Syntax(l.pos(), "Unexpected character: %q", r)
			}
			l.emit(kind, string(ch), l.pos())
			l.advance()
		}
	}
	l.emit(token.EOF, "", l.pos())
	return nil
}

func (l *lexer) number() error {
	start, pos := l.i, l.pos()
	for l.i < len(l.src) && (isDigit(l.src[l.i]) || l.src[l.i] == '.') {
		l.advance()
	}
	lit := l.src[start:l.i]
	if dots := strings.Count(lit, "."); dots > 1 {
		return diagnostics.Syntax(pos, "Expected 0 or 1 '.' in a number, got %d/1", dots)
	}
	l.emit(token.Number, lit, pos)
	return nil
}

func (l *lexer) word() {
	start, pos := l.i, l.pos()
	for l.i < len(l.src) && isIdentPart(l.src[l.i]) {
		l.advance()
	}
	lit := l.src[start:l.i]
	l.emit(token.Lookup(lit), lit, pos)
}

func (l *lexer) advance() {
	if l.src[l.i] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.i++
}

func (l *lexer) pos() diagnostics.Position {
	return diagnostics.Position{Line: l.line, Column: l.col}
}

func (l *lexer) emit(kind token.Kind, text string, pos diagnostics.Position) {
	l.out = append(l.out, token.Token{Kind: kind, Text: text, Pos: pos})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
