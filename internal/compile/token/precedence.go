package token

import "strconv"

// Precedence orders binary operators from loosest to tightest binding.
// PrecedenceNone sits below every operator and stops the climbing loop.
type Precedence int

const (
	PrecedenceNone Precedence = iota
	PrecedenceAddition
	PrecedenceMultiplication
)

// MinPrecedence is the loosest real operator precedence.
const MinPrecedence = PrecedenceAddition

// Precedence reports the binary precedence of t. Minus is reported as
// subtraction; the parser only asks after a complete operand.
func (t Type) Precedence() Precedence {
	switch t {
	case Plus, Minus:
		return PrecedenceAddition
	case Asterisk, Slash, Percent:
		return PrecedenceMultiplication
	default:
		return PrecedenceNone
	}
}

func (p Precedence) AtLeast(other Precedence) bool { return p >= other }

func (p Precedence) HigherThan(other Precedence) bool { return p > other }

func (p Precedence) String() string {
	switch p {
	case PrecedenceNone:
		return "none"
	case PrecedenceAddition:
		return "addition"
	case PrecedenceMultiplication:
		return "multiplication"
	default:
		return "Precedence(" + strconv.Itoa(int(p)) + ")"
	}
}
