package token

import (
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// entry is the serialized form of a Token, as written by external lexers:
//
//	- {type: identifier, text: f}
//	- {type: "("}
//	- {type: number, value: 1}
//	- {type: ")"}
//
// Type is either an operator or parenthesis symbol or one of the names
// "identifier", "number" and "eof".
type entry struct {
	Type  string   `json:"type"`
	Text  string   `json:"text,omitempty"`
	Value *float64 `json:"value,omitempty"`
	Pos   Pos      `json:"pos,omitempty"`
	End   Pos      `json:"end,omitempty"`
}

// Unmarshal decodes a YAML or JSON token stream. The stream does not need to
// end in an eof entry.
func Unmarshal(data []byte) ([]Token, error) {
	var entries []entry
	if err := yaml.UnmarshalStrict(data, &entries); err != nil {
		return nil, errors.Wrap(err, "decoding token stream")
	}

	toks := make([]Token, 0, len(entries))
	for i, e := range entries {
		typ := Lookup(e.Type)
		if typ == Invalid {
			typ = LookupName(strings.ToLower(e.Type))
		}

		tok := Token{Type: typ, Pos: e.Pos, End: e.End}
		switch typ {
		case Invalid:
			return nil, errors.Errorf("token %d: unknown type %q", i, e.Type)
		case Identifier:
			if e.Text == "" {
				return nil, errors.Errorf("token %d: identifier without text", i)
			}
			tok.Text = e.Text
		case Number:
			if e.Value == nil {
				return nil, errors.Errorf("token %d: number without value", i)
			}
			tok.Value = *e.Value
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// Marshal encodes toks as a YAML token stream readable by Unmarshal.
func Marshal(toks []Token) ([]byte, error) {
	entries := make([]entry, 0, len(toks))
	for _, tok := range toks {
		e := entry{Type: typeName(tok.Type), Pos: tok.Pos, End: tok.End}
		switch tok.Type {
		case Identifier:
			e.Text = tok.Text
		case Number:
			v := tok.Value
			e.Value = &v
		}
		entries = append(entries, e)
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return nil, errors.Wrap(err, "encoding token stream")
	}
	return data, nil
}

func typeName(t Type) string {
	s := t.String()
	if Lookup(s) == t {
		return s
	}
	return strings.Trim(s, "<>")
}
