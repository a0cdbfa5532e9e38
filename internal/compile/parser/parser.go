package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"codeberg.org/rileyq/climb/internal/compile/ast"
	"codeberg.org/rileyq/climb/internal/compile/token"
)

// Parser reads one expression from a token sequence. The sequence ends at
// its first EOF token or, if it has none, at its last token.
type Parser struct {
	toks []token.Token
	pos  int
}

func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses toks as a single expression followed by end of input.
func Parse(toks []token.Token) (ast.Expr, error) {
	return New(toks).Parse()
}

func (p *Parser) Parse() (ast.Expr, error) {
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.cur().Type != token.EOF {
		return nil, p.error(TrailingInput, "end of input")
	}
	return x, nil
}

// Expression: Term (BinaryOperator Term)*
func (p *Parser) expr() (ast.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	return p.binaryOps(left, token.MinPrecedence)
}

// binaryOps folds operators of at least prec into left. A right operand is
// handed back to binaryOps while the operator after it binds tighter than
// the one before it, so tighter suffixes end up in the right subtree and
// equal precedence groups to the left.
func (p *Parser) binaryOps(left ast.Expr, prec token.Precedence) (ast.Expr, error) {
	for p.cur().Type.Precedence().AtLeast(prec) {
		op := p.cur()
		p.next()

		right, err := p.term()
		if err != nil {
			return nil, err
		}

		for p.cur().Type.Precedence().HigherThan(op.Type.Precedence()) {
			right, err = p.binaryOps(right, p.cur().Type.Precedence())
			if err != nil {
				return nil, err
			}
		}

		left = &ast.BinaryExpr{
			Left:  left,
			Op:    ast.BinaryOpOf(op.Type),
			OpPos: op.Pos,
			Right: right,
		}
	}

	return left, nil
}

// Term: '-' Term | Primary Postfix*
func (p *Parser) term() (ast.Expr, error) {
	if t := p.cur(); t.Type == token.Minus {
		p.next()
		x, err := p.term()
		if err != nil {
			return nil, err
		}
		return &ast.NegateExpr{OpPos: t.Pos, X: x}, nil
	}

	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	return p.postfix(x)
}

// Primary: Identifier | Number | '(' Expression ')'
func (p *Parser) primary() (ast.Expr, error) {
	t := p.cur()
	switch t.Type {
	case token.Identifier:
		p.next()
		return &ast.Identifier{NamePos: t.Pos, NameEnd: t.End, Name: t.Text}, nil
	case token.Number:
		p.next()
		return &ast.NumberLiteral{ValuePos: t.Pos, ValueEnd: t.End, Value: t.Value}, nil
	case token.OpenParen:
		p.next()
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.closeParen(); err != nil {
			return nil, err
		}
		return x, nil
	default:
		return nil, p.error(UnexpectedToken, `identifier, number, or "("`)
	}
}

// Postfix: '(' Expression ')'
func (p *Parser) postfix(x ast.Expr) (ast.Expr, error) {
	for p.cur().Type == token.OpenParen {
		lparen := p.cur()
		p.next()
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		rparen, err := p.closeParen()
		if err != nil {
			return nil, err
		}
		x = &ast.CallExpr{
			Callee: x,
			Lparen: lparen.Pos,
			Arg:    arg,
			Rparen: rparen.End,
		}
	}
	return x, nil
}

func (p *Parser) closeParen() (token.Token, error) {
	t := p.cur()
	if t.Type != token.CloseParen {
		return t, p.error(MissingClosingParen, `")"`)
	}
	p.next()
	return t, nil
}

// cur returns the current token. Past the end of the sequence it returns an
// EOF token positioned after the last token.
func (p *Parser) cur() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	var end token.Pos
	if n := len(p.toks); n > 0 {
		end = p.toks[n-1].End
	}
	return token.Token{Type: token.EOF, Pos: end, End: end}
}

func (p *Parser) next() {
	if p.pos >= len(p.toks) {
		panic("parser: advanced past end of input")
	}
	p.pos++
}

func (p *Parser) error(kind ErrorKind, expected string) *ParseError {
	found := p.cur()
	return &ParseError{
		Kind:     kind,
		Index:    p.pos,
		Found:    found,
		Expected: expected,
		err:      errors.Wrapf(kind.sentinel(), "expected %s but found %s", expected, describe(found)),
	}
}

func describe(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of input"
	case token.Identifier:
		return fmt.Sprintf("identifier %q", t.Text)
	case token.Number:
		return "number " + t.String()
	default:
		return fmt.Sprintf("%q", t.Type)
	}
}
