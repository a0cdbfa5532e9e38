package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"codeberg.org/rileyq/climb/internal/compile/parser"
	"codeberg.org/rileyq/climb/internal/compile/token"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	caretColor = color.New(color.FgGreen, color.Bold)
)

// writeDiagnostic reports err for the token stream read from path. Parse
// errors also get the token stream with a caret under the offending token:
//
//	in.yaml: error: parse error at token 4: ...
//	  ( 1 + 2 <eof>
//	          ^
func writeDiagnostic(w io.Writer, path string, toks []token.Token, err error) error {
	if _, werr := fmt.Fprintf(w, "%s: ", path); werr != nil {
		return werr
	}
	if _, werr := errorColor.Fprint(w, "error: "); werr != nil {
		return werr
	}
	if _, werr := fmt.Fprintln(w, err); werr != nil {
		return werr
	}

	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		return nil
	}

	var line strings.Builder
	col := -1
	for i, t := range toks {
		if i > 0 {
			line.WriteString(" ")
		}
		if i == perr.Index {
			col = line.Len()
		}
		line.WriteString(tokenText(t))
		if t.Type == token.EOF {
			break
		}
	}
	if col < 0 {
		// The stream ran out without an EOF token.
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		col = line.Len()
		line.WriteString(tokenText(token.Token{Type: token.EOF}))
	}

	if _, werr := fmt.Fprintf(w, "  %s\n  %s", line.String(), strings.Repeat(" ", col)); werr != nil {
		return werr
	}
	_, werr := caretColor.Fprintln(w, "^")
	return werr
}

func tokenText(t token.Token) string {
	if t.Type == token.EOF {
		return t.Type.String()
	}
	return t.String()
}
