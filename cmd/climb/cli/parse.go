package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"codeberg.org/rileyq/climb/internal/compile/ast"
	"codeberg.org/rileyq/climb/internal/compile/ast/printer"
	"codeberg.org/rileyq/climb/internal/compile/parser"
	"codeberg.org/rileyq/climb/internal/compile/token"
)

const (
	formatInfix = "infix"
	formatTree  = "tree"
)

// parseCmd holds the flag values for the `parse` subcommand.
type parseCmd struct {
	format string
	jobs   int
}

// ParseCommand returns a [*cli.Command] that parses token stream files and
// prints their expressions.
func ParseCommand() *cli.Command {
	cmd := &parseCmd{}
	return &cli.Command{
		Name:        "parse",
		Description: "parse reads token stream files and prints the expression each one holds.",
		Usage:       "climb parse [--format=infix|tree] [--jobs=N] FILE...",
		ArgsUsage:   "FILE...",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *parseCmd) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        formatFlagName,
			Value:       formatInfix,
			Usage:       "output format: infix (fully parenthesized) or tree",
			Destination: &cmd.format,
		},
		&cli.IntFlag{
			Name:        jobsFlagName,
			Value:       4,
			Usage:       "files parsed at once; 0 means no limit",
			Destination: &cmd.jobs,
		},
	}
}

func (cmd *parseCmd) action(ctx *cli.Context) error {
	if cmd.format != formatInfix && cmd.format != formatTree {
		return errors.Errorf("unknown --%s %q", formatFlagName, cmd.format)
	}

	paths := ctx.Args().Slice()
	if len(paths) == 0 {
		return errors.New("parse: no input files")
	}

	inputs := make([][]token.Token, len(paths))
	for i, path := range paths {
		toks, err := readTokens(path)
		if err != nil {
			return err
		}
		inputs[i] = toks
	}

	log.Debugf("parsing %d files, %d at a time", len(paths), cmd.jobs)
	results, err := parser.ParseAll(ctx.Context, inputs, cmd.jobs)
	if err != nil {
		return err
	}

	failed := 0
	for i, r := range results {
		if r.Err != nil {
			failed++
			if err := writeDiagnostic(ctx.App.ErrWriter, paths[i], inputs[i], r.Err); err != nil {
				return err
			}
			continue
		}
		if len(paths) > 1 {
			if _, err := fmt.Fprintf(ctx.App.Writer, "%s:\n", paths[i]); err != nil {
				return err
			}
		}
		if err := cmd.print(ctx.App.Writer, r.Expr); err != nil {
			return err
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d inputs failed to parse", failed, len(paths))
	}
	return nil
}

func (cmd *parseCmd) print(w io.Writer, x ast.Expr) error {
	if cmd.format == formatTree {
		return printer.Fdump(w, x)
	}
	if err := printer.Fprint(w, x); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
