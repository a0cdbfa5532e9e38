package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"codeberg.org/rileyq/climb/internal/compile/token"
)

type ErrorKind int

const (
	// UnexpectedToken: no identifier, number or "(" where an operand starts.
	UnexpectedToken ErrorKind = iota
	// MissingClosingParen: a grouping or call "(" without its ")".
	MissingClosingParen
	// TrailingInput: tokens left over after a complete expression.
	TrailingInput
)

var (
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrMissingClosingParen = errors.New("missing closing parenthesis")
	ErrTrailingInput       = errors.New("trailing input")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnexpectedToken:
		return ErrUnexpectedToken
	case MissingClosingParen:
		return ErrMissingClosingParen
	case TrailingInput:
		return ErrTrailingInput
	default:
		panic(fmt.Sprintf("parser: unknown error kind %d", int(k)))
	}
}

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingClosingParen:
		return "MissingClosingParen"
	case TrailingInput:
		return "TrailingInput"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError reports the first malformed construct in a token sequence.
// Index is the position of Found in the sequence; Found is a synthesized EOF
// token when the sequence ran out.
type ParseError struct {
	Kind     ErrorKind
	Index    int
	Found    token.Token
	Expected string
	err      error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %d: %v", err.Index, err.err)
}

func (err *ParseError) Unwrap() error {
	return err.err
}
