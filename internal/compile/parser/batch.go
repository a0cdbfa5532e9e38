package parser

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"codeberg.org/rileyq/climb/internal/compile/ast"
	"codeberg.org/rileyq/climb/internal/compile/token"
)

// Result is the outcome of parsing one input of ParseAll. Exactly one of
// Expr and Err is set.
type Result struct {
	Expr ast.Expr
	Err  error
}

// ParseAll parses each token sequence independently, running at most limit
// parses at once (no limit if limit <= 0). Parse failures are reported per
// input in the results; the returned error is only set when ctx is done
// before every input was parsed.
func ParseAll(ctx context.Context, inputs [][]token.Token, limit int) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, toks := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x, err := Parse(toks)
			results[i] = Result{Expr: x, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "parsing inputs")
	}
	return results, nil
}
