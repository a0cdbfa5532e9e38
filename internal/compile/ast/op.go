package ast

import (
	"fmt"

	"codeberg.org/rileyq/climb/internal/compile/token"
)

type BinaryOp int

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
	Modulo
)

// BinaryOpOf returns the operation written by t. It panics if t is not a
// binary operator; callers check t.Precedence() first.
func BinaryOpOf(t token.Type) BinaryOp {
	switch t {
	case token.Plus:
		return Add
	case token.Minus:
		return Subtract
	case token.Asterisk:
		return Multiply
	case token.Slash:
		return Divide
	case token.Percent:
		return Modulo
	default:
		panic(fmt.Sprintf("ast: BinaryOpOf called on %q", t))
	}
}

// Token returns the operator token that writes op.
func (op BinaryOp) Token() token.Type {
	switch op {
	case Add:
		return token.Plus
	case Subtract:
		return token.Minus
	case Multiply:
		return token.Asterisk
	case Divide:
		return token.Slash
	case Modulo:
		return token.Percent
	default:
		return token.Invalid
	}
}

func (op BinaryOp) Precedence() token.Precedence {
	return op.Token().Precedence()
}

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case Modulo:
		return "Modulo"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}
