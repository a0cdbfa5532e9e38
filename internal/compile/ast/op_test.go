package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/rileyq/climb/internal/compile/token"
)

func TestBinaryOpOf(t *testing.T) {
	testCases := []struct {
		tok  token.Type
		op   BinaryOp
		prec token.Precedence
	}{
		{token.Plus, Add, token.PrecedenceAddition},
		{token.Minus, Subtract, token.PrecedenceAddition},
		{token.Asterisk, Multiply, token.PrecedenceMultiplication},
		{token.Slash, Divide, token.PrecedenceMultiplication},
		{token.Percent, Modulo, token.PrecedenceMultiplication},
	}
	for _, tc := range testCases {
		op := BinaryOpOf(tc.tok)
		assert.Equal(t, tc.op, op)
		assert.Equal(t, tc.tok, op.Token())
		assert.Equal(t, tc.prec, op.Precedence())
	}
}

func TestBinaryOpOf_NonOperatorPanics(t *testing.T) {
	for _, tok := range []token.Type{token.EOF, token.OpenParen, token.CloseParen, token.Identifier, token.Number, token.Invalid} {
		assert.Panics(t, func() { BinaryOpOf(tok) }, "token %v", tok)
	}
}

func TestBinaryOp_String(t *testing.T) {
	assert.Equal(t, "Subtract", Subtract.String())
	assert.Equal(t, "BinaryOp(9)", BinaryOp(9).String())
	assert.Equal(t, token.Invalid, BinaryOp(9).Token())
}

func TestPositions(t *testing.T) {
	f := &Identifier{NamePos: 1, NameEnd: 2, Name: "f"}
	n := &NumberLiteral{ValuePos: 4, ValueEnd: 5, Value: 3}
	call := &CallExpr{Callee: f, Lparen: 2, Arg: n, Rparen: 6}
	neg := &NegateExpr{OpPos: 0, X: call}

	assert.Equal(t, token.Pos(1), call.Pos())
	assert.Equal(t, token.Pos(6), call.End())
	assert.Equal(t, token.Pos(0), neg.Pos())
	assert.Equal(t, token.Pos(6), neg.End())

	sum := &BinaryExpr{Left: neg, Op: Add, OpPos: 7, Right: &Identifier{NamePos: 9, NameEnd: 10, Name: "x"}}
	assert.Equal(t, token.Pos(0), sum.Pos())
	assert.Equal(t, token.Pos(10), sum.End())
}
