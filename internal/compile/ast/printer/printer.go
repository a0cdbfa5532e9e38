package printer

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"codeberg.org/rileyq/climb/internal/compile/ast"
)

// Fprint writes node as fully parenthesized infix text: every binary
// operation and negation is wrapped in parentheses, calls are written as
// callee(arg).
func Fprint(w io.Writer, node ast.Node) error {
	var err error
	switch node := node.(type) {
	case *ast.Identifier:
		_, err = io.WriteString(w, node.Name)
		return err
	case *ast.NumberLiteral:
		_, err = io.WriteString(w, formatNumber(node.Value))
		return err
	case *ast.NegateExpr:
		_, err = io.WriteString(w, "(-")
		if err != nil {
			return err
		}
		err = Fprint(w, node.X)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, ")")
		return err
	case *ast.BinaryExpr:
		_, err = io.WriteString(w, "(")
		if err != nil {
			return err
		}
		err = Fprint(w, node.Left)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " "+node.Op.Token().String()+" ")
		if err != nil {
			return err
		}
		err = Fprint(w, node.Right)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, ")")
		return err
	case *ast.CallExpr:
		err = Fprint(w, node.Callee)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "(")
		if err != nil {
			return err
		}
		err = Fprint(w, node.Arg)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, ")")
		return err
	default:
		return errors.Errorf("printer: Fprint unimplemented for %T", node)
	}
}

// Sprint returns the Fprint text of node.
func Sprint(node ast.Node) (string, error) {
	var b strings.Builder
	if err := Fprint(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Fdump writes node as an indented tree, one node per line.
func Fdump(w io.Writer, node ast.Node) error {
	return fdump(w, node, 0)
}

func fdump(w io.Writer, node ast.Node, depth int) error {
	const pad = "  "

	_, err := io.WriteString(w, strings.Repeat(pad, depth))
	if err != nil {
		return err
	}

	var children []ast.Node
	switch node := node.(type) {
	case *ast.Identifier:
		_, err = io.WriteString(w, "Identifier "+node.Name+"\n")
	case *ast.NumberLiteral:
		_, err = io.WriteString(w, "NumberLiteral "+formatNumber(node.Value)+"\n")
	case *ast.NegateExpr:
		_, err = io.WriteString(w, "NegateExpr\n")
		children = []ast.Node{node.X}
	case *ast.BinaryExpr:
		_, err = io.WriteString(w, "BinaryExpr "+node.Op.String()+"\n")
		children = []ast.Node{node.Left, node.Right}
	case *ast.CallExpr:
		_, err = io.WriteString(w, "CallExpr\n")
		children = []ast.Node{node.Callee, node.Arg}
	default:
		return errors.Errorf("printer: Fdump unimplemented for %T", node)
	}
	if err != nil {
		return err
	}

	for _, c := range children {
		err = fdump(w, c, depth+1)
		if err != nil {
			return err
		}
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
