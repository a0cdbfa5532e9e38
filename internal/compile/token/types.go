// Code generated by generate_tokens.go

package token

type Type int

const (
	Invalid Type = iota
	EOF
	Identifier
	Number
	Asterisk
	CloseParen
	Minus
	OpenParen
	Percent
	Plus
	Slash
)

func (t Type) String() string {
	if t < 0 || t > Slash {
		t = Invalid
	}
	return names[t]
}

var names = []string{"<invalid>", "<eof>", "<identifier>", "<number>", "*", ")", "-", "(", "%", "+", "/"}

func Lookup(symbol string) Type {
	switch symbol {
	case "%":
		return Percent
	case "(":
		return OpenParen
	case ")":
		return CloseParen
	case "*":
		return Asterisk
	case "+":
		return Plus
	case "-":
		return Minus
	case "/":
		return Slash
	}
	return Invalid
}

func LookupName(name string) Type {
	switch name {
	case "eof":
		return EOF
	case "identifier":
		return Identifier
	case "number":
		return Number
	}
	return Invalid
}
