package printer

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/rileyq/climb/internal/compile/ast"
	"codeberg.org/rileyq/climb/internal/compile/parser"
	"codeberg.org/rileyq/climb/internal/compile/token"
	"codeberg.org/rileyq/climb/internal/compile/token/tokentest"
)

var inputs = [][]any{
	{"a"},
	{1, "+", 2, "*", 3},
	{1, "*", 2, "+", 3},
	{"-", 2, "+", 3},
	{"f", "(", 1, ")", "(", 2, ")"},
	{"-", "-", "f", "(", "x", "-", "y", ")", "%", 4},
	{"(", "-", "g", ")", "(", 1, ")", "/", "(", "a", "-", "b", ")"},
	{"a", "+", "b", "*", "c", "*", "d", "+", "e"},
	{2, "(", 0.5, ")"},
}

func TestSprint(t *testing.T) {
	want := []string{
		"a",
		"(1 + (2 * 3))",
		"((1 * 2) + 3)",
		"((-2) + 3)",
		"f(1)(2)",
		"((-(-f((x - y)))) % 4)",
		"((-g)(1) / (a - b))",
		"((a + ((b * c) * d)) + e)",
		"2(0.5)",
	}
	for i, in := range inputs {
		x, err := parser.Parse(tokentest.Tokens(in...))
		require.NoError(t, err)
		got, err := Sprint(x)
		require.NoError(t, err)
		assert.Equal(t, want[i], got)
	}
}

func TestTokens_RoundTrip(t *testing.T) {
	for _, in := range inputs {
		x, err := parser.Parse(tokentest.Tokens(in...))
		require.NoError(t, err)

		toks, err := Tokens(x)
		require.NoError(t, err)
		require.Equal(t, token.EOF, toks[len(toks)-1].Type)

		again, err := parser.Parse(toks)
		require.NoError(t, err, "reparsing %v", toks)
		if diff := cmp.Diff(x, again); diff != "" {
			t.Errorf("round trip of %v mismatch (-want +got):\n%s", in, diff)
		}

		toksAgain, err := Tokens(again)
		require.NoError(t, err)
		assert.Equal(t, toks, toksAgain)
	}
}

func TestTokens_NumberValues(t *testing.T) {
	for _, v := range []float64{-2, math.Inf(1), 1e300} {
		toks, err := Tokens(&ast.NumberLiteral{Value: v})
		require.NoError(t, err)
		x, err := parser.Parse(toks)
		require.NoError(t, err)
		assert.Equal(t, &ast.NumberLiteral{Value: v}, x)
	}
}

func TestTokens_Canonical(t *testing.T) {
	x, err := parser.Parse(tokentest.Tokens("-", "a", "*", "f", "(", 1, ")"))
	require.NoError(t, err)
	toks, err := Tokens(x)
	require.NoError(t, err)
	assert.Equal(t, tokentest.Tokens("(", "(", "-", "a", ")", "*", "f", "(", 1, ")", ")"), toks)
}

func TestFdump(t *testing.T) {
	x, err := parser.Parse(tokentest.Tokens("-", "f", "(", 1, ")", "+", 2, "*", "y"))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Fdump(&b, x))
	assert.Equal(t, `BinaryExpr Add
  NegateExpr
    CallExpr
      Identifier f
      NumberLiteral 1
  BinaryExpr Multiply
    NumberLiteral 2
    Identifier y
`, b.String())
}

func TestUnimplemented(t *testing.T) {
	var b strings.Builder
	assert.Error(t, Fprint(&b, nil))
	assert.Error(t, Fdump(&b, nil))
	_, err := Tokens(nil)
	assert.Error(t, err)

	_, err = Tokens(&ast.BinaryExpr{Left: &ast.Identifier{Name: "a"}, Op: ast.BinaryOp(42), Right: &ast.Identifier{Name: "b"}})
	assert.Error(t, err)
}
