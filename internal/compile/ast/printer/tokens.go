package printer

import (
	"github.com/pkg/errors"

	"codeberg.org/rileyq/climb/internal/compile/ast"
	"codeberg.org/rileyq/climb/internal/compile/token"
)

// Tokens renders node as the token sequence of its Fprint text, terminated
// by EOF. Parsing the result yields a tree equal to node apart from
// positions, which are left as token.NoPos.
func Tokens(node ast.Node) ([]token.Token, error) {
	toks, err := appendTokens(nil, node)
	if err != nil {
		return nil, err
	}
	return append(toks, token.Token{Type: token.EOF}), nil
}

func appendTokens(toks []token.Token, node ast.Node) ([]token.Token, error) {
	var err error
	switch node := node.(type) {
	case *ast.Identifier:
		return append(toks, token.Token{Type: token.Identifier, Text: node.Name}), nil
	case *ast.NumberLiteral:
		return append(toks, token.Token{Type: token.Number, Value: node.Value}), nil
	case *ast.NegateExpr:
		toks = append(toks, token.Token{Type: token.OpenParen}, token.Token{Type: token.Minus})
		toks, err = appendTokens(toks, node.X)
		if err != nil {
			return nil, err
		}
		return append(toks, token.Token{Type: token.CloseParen}), nil
	case *ast.BinaryExpr:
		op := node.Op.Token()
		if op == token.Invalid {
			return nil, errors.Errorf("printer: unknown binary operation %v", node.Op)
		}
		toks = append(toks, token.Token{Type: token.OpenParen})
		toks, err = appendTokens(toks, node.Left)
		if err != nil {
			return nil, err
		}
		toks = append(toks, token.Token{Type: op})
		toks, err = appendTokens(toks, node.Right)
		if err != nil {
			return nil, err
		}
		return append(toks, token.Token{Type: token.CloseParen}), nil
	case *ast.CallExpr:
		toks, err = appendTokens(toks, node.Callee)
		if err != nil {
			return nil, err
		}
		toks = append(toks, token.Token{Type: token.OpenParen})
		toks, err = appendTokens(toks, node.Arg)
		if err != nil {
			return nil, err
		}
		return append(toks, token.Token{Type: token.CloseParen}), nil
	default:
		return nil, errors.Errorf("printer: Tokens unimplemented for %T", node)
	}
}
