// Package tokentest builds token sequences for tests without a lexer.
package tokentest

import (
	"fmt"

	"codeberg.org/rileyq/climb/internal/compile/token"
)

// Tokens converts items to tokens and appends EOF. Numbers (int or float64)
// become Number tokens, strings naming an operator or parenthesis become that
// token and any other string becomes an Identifier.
//
//	Tokens("f", "(", 1, "+", 2.5, ")")
func Tokens(items ...any) []token.Token {
	return append(Unterminated(items...), token.Token{Type: token.EOF})
}

// Unterminated is Tokens without the trailing EOF.
func Unterminated(items ...any) []token.Token {
	toks := make([]token.Token, 0, len(items)+1)
	for _, item := range items {
		switch item := item.(type) {
		case int:
			toks = append(toks, token.Token{Type: token.Number, Value: float64(item)})
		case float64:
			toks = append(toks, token.Token{Type: token.Number, Value: item})
		case string:
			if typ := token.Lookup(item); typ != token.Invalid {
				toks = append(toks, token.Token{Type: typ})
			} else {
				toks = append(toks, token.Token{Type: token.Identifier, Text: item})
			}
		default:
			panic(fmt.Sprintf("tokentest: unsupported item %#v", item))
		}
	}
	return toks
}
