package parser

import (
	"errors"
	"strconv"

	"github.com/iaminfinityiq/architect/pkg/ast"
	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/lexer"
	"github.com/iaminfinityiq/architect/pkg/token"
)

// Parser consumes a token stream produced by the lexer.
type Parser struct {
	toks []token.Token
	i    int
}

// New returns a parser over toks. A missing trailing EOF is tolerated.
func New(toks []token.Token) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		var pos diagnostics.Position
		if len(toks) > 0 {
			pos = toks[len(toks)-1].Pos
		}
		toks = append(toks[:len(toks):len(toks)], token.Token{Kind: token.EOF, Pos: pos})
	}
	return &Parser{toks: toks}
}

// Parse builds a program from toks.
func Parse(toks []token.Token) (*ast.Program, error) {
	return New(toks).ParseProgram()
}

// ParseSource tokenizes and parses src.
func ParseSource(src string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

func (p *Parser) peek() token.Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.i < len(p.toks)-1 {
		p.i++
	}
	return t
}

// expect consumes one token and fails with msg unless its kind is accepted.
// Errors at a statement end carry msg verbatim; otherwise the offending
// token's text is appended.
func (p *Parser) expect(msg string, kinds ...token.Kind) (token.Token, error) {
	t := p.advance()
	if t.Is(kinds...) {
		return t, nil
	}
	if t.IsEnd() {
		return t, diagnostics.Syntax(t.Pos, "%s", msg)
	}
	return t, diagnostics.Syntax(t.Pos, "%s, got '%s'", msg, t.Text)
}

func (p *Parser) skipNewlines() {
	for p.peek().Kind == token.Newline {
		p.advance()
	}
}

// ParseProgram parses statements until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	start := p.peek().Pos
	var statements []ast.Statement
	p.skipNewlines()
	for p.peek().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		p.skipNewlines()
	}
	program := ast.NewProgram(statements)
	ast.SetSpan(program, ast.At(start))
	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.peek().Kind {
	case token.Build:
		return p.parseFrameStatement(token.Build)
	case token.Fix:
		return p.parseFrameStatement(token.Fix)
	case token.Decision:
		return nil, diagnostics.Interpreter(p.peek().Pos, "decision statements are not implemented")
	default:
		return p.parseExpression()
	}
}

// parseFrameStatement handles `build|fix frame <id> with screw <expr>`.
func (p *Parser) parseFrameStatement(verb token.Kind) (ast.Statement, error) {
	start := p.advance().Pos
	if _, err := p.expect("Expected 'frame'", token.Frame); err != nil {
		return nil, err
	}
	name, err := p.expect("Expected identifier", token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("Expected 'with'", token.With); err != nil {
		return nil, err
	}
	if _, err := p.expect("Expected 'screw'", token.Screw); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if next := p.peek(); !next.IsEnd() {
		return nil, diagnostics.Syntax(next.Pos, "Expected newline, got '%s'", next.Kind)
	}

	var stmt ast.Statement
	if verb == token.Build {
		stmt = ast.NewAssignmentStatement(name.Text, value)
	} else {
		stmt = ast.NewUpdateStatement(name.Text, value)
	}
	ast.SetSpan(stmt, ast.At(start))
	return stmt, nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseMultiplicative, token.Plus, token.Minus)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseExponent, token.Multiply, token.Divide)
}

func (p *Parser) parseLeftAssoc(operand func() (ast.Expression, error), ops ...token.Kind) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.peek().Is(ops...) {
		op := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		bin := ast.NewBinaryExpression(left, op.Kind, right)
		ast.SetSpan(bin, left.Span())
		left = bin
	}
	return left, nil
}

// parseExponent collects `a ^ b ^ c` operands and folds them from the end so
// that power is right associative.
func (p *Parser) parseExponent() (ast.Expression, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	for p.peek().Kind == token.Power {
		p.advance()
		next, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}

	result := operands[len(operands)-1]
	for i := len(operands) - 2; i >= 0; i-- {
		bin := ast.NewBinaryExpression(operands[i], token.Power, result)
		ast.SetSpan(bin, operands[i].Span())
		result = bin
	}
	return result, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if !p.peek().Is(token.Plus, token.Minus) {
		return p.parsePrimary()
	}
	start := p.peek().Pos
	sign := token.Plus
	for p.peek().Is(token.Plus, token.Minus) {
		if p.advance().Kind == token.Minus {
			if sign == token.Plus {
				sign = token.Minus
			} else {
				sign = token.Plus
			}
		}
	}
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	unary := ast.NewUnaryExpression(sign, operand)
	ast.SetSpan(unary, ast.At(start))
	return unary, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	t := p.peek()
	var expr ast.Expression
	switch t.Kind {
	case token.Identifier:
		p.advance()
		expr = ast.NewIdentifier(t.Text)
	case token.Number:
		p.advance()
		value, err := strconv.ParseFloat(t.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, diagnostics.Syntax(t.Pos, "Invalid number literal: '%s'", t.Text)
		}
		expr = ast.NewNumberLiteral(value)
	case token.True:
		p.advance()
		expr = ast.NewBooleanLiteral(true)
	case token.False:
		p.advance()
		expr = ast.NewBooleanLiteral(false)
	case token.Null:
		p.advance()
		expr = ast.NewNullLiteral()
	case token.OpenParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("Expected ')'", token.CloseParen); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, diagnostics.Syntax(t.Pos, "Unexpected token found: '%s'", t)
	}
	ast.SetSpan(expr, ast.At(t.Pos))
	return expr, nil
}
