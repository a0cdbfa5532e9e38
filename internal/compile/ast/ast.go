package ast

import "codeberg.org/rileyq/climb/internal/compile/token"

type Node interface {
	Pos() token.Pos
	End() token.Pos

	astNode()
}

type Expr interface {
	Node

	astExpr()
}

type Identifier struct {
	NamePos token.Pos
	NameEnd token.Pos
	Name    string
}

func (id *Identifier) Pos() token.Pos { return id.NamePos }
func (id *Identifier) End() token.Pos { return id.NameEnd }

func (*Identifier) astNode() {}
func (*Identifier) astExpr() {}

type NumberLiteral struct {
	ValuePos token.Pos
	ValueEnd token.Pos
	Value    float64
}

func (lit *NumberLiteral) Pos() token.Pos { return lit.ValuePos }
func (lit *NumberLiteral) End() token.Pos { return lit.ValueEnd }

func (*NumberLiteral) astNode() {}
func (*NumberLiteral) astExpr() {}

// NegateExpr is prefix minus.
type NegateExpr struct {
	OpPos token.Pos
	X     Expr
}

func (expr *NegateExpr) Pos() token.Pos { return expr.OpPos }
func (expr *NegateExpr) End() token.Pos { return expr.X.End() }

func (*NegateExpr) astNode() {}
func (*NegateExpr) astExpr() {}

type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	OpPos token.Pos
	Right Expr
}

func (expr *BinaryExpr) Pos() token.Pos { return expr.Left.Pos() }
func (expr *BinaryExpr) End() token.Pos { return expr.Right.End() }

func (*BinaryExpr) astNode() {}
func (*BinaryExpr) astExpr() {}

// CallExpr applies Callee to a single argument. Rparen is the end of the
// closing parenthesis.
type CallExpr struct {
	Callee Expr
	Lparen token.Pos
	Arg    Expr
	Rparen token.Pos
}

func (expr *CallExpr) Pos() token.Pos { return expr.Callee.Pos() }
func (expr *CallExpr) End() token.Pos { return expr.Rparen }

func (*CallExpr) astNode() {}
func (*CallExpr) astExpr() {}
