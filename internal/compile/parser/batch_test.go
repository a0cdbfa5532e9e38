package parser

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/rileyq/climb/internal/compile/ast"
	"codeberg.org/rileyq/climb/internal/compile/token"
	"codeberg.org/rileyq/climb/internal/compile/token/tokentest"
)

func TestParseAll(t *testing.T) {
	shared := tokentest.Tokens("f", "(", 1, ")", "*", 2)
	inputs := [][]token.Token{
		shared,
		tokentest.Tokens(1, 2),
		shared,
		tokentest.Tokens("-", "a"),
	}

	results, err := ParseAll(context.Background(), inputs, 2)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	want := bin(ast.Multiply, call(id("f"), num(1)), num(2))
	for _, i := range []int{0, 2} {
		require.NoError(t, results[i].Err)
		assert.Empty(t, cmp.Diff(want, results[i].Expr))
	}

	assert.Nil(t, results[1].Expr)
	assert.ErrorIs(t, results[1].Err, ErrTrailingInput)

	require.NoError(t, results[3].Err)
	assert.Empty(t, cmp.Diff(neg(id("a")), results[3].Expr))
}

func TestParseAll_Unlimited(t *testing.T) {
	inputs := make([][]token.Token, 50)
	for i := range inputs {
		inputs[i] = tokentest.Tokens(i, "+", "x")
	}

	results, err := ParseAll(context.Background(), inputs, 0)
	require.NoError(t, err)
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Empty(t, cmp.Diff(bin(ast.Add, num(float64(i)), id("x")), r.Expr))
	}
}

func TestParseAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := [][]token.Token{tokentest.Tokens(1), tokentest.Tokens(2)}
	results, err := ParseAll(ctx, inputs, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}
