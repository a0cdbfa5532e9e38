package token

import (
	"strconv"
)

//go:generate go run ../../../tools/generate_tokens.go tokens.json types.go

// Pos is a source offset supplied by the lexer. Tokens built without a
// source carry NoPos.
type Pos int

const NoPos Pos = 0

type Token struct {
	Type Type
	Pos  Pos
	End  Pos
	// Text holds the name of an Identifier.
	Text string
	// Value holds the value of a Number.
	Value float64
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return ""
	case Identifier:
		return t.Text
	case Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	default:
		return t.Type.String()
	}
}
