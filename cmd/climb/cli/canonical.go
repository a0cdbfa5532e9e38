package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"codeberg.org/rileyq/climb/internal/compile/ast/printer"
	"codeberg.org/rileyq/climb/internal/compile/parser"
	"codeberg.org/rileyq/climb/internal/compile/token"
)

// canonicalCmd holds the flag values for the `canonical` subcommand, which
// rewrites a token stream with every operation made explicit by parentheses.
type canonicalCmd struct {
	output string
}

// CanonicalCommand returns a [*cli.Command] that writes the canonical token
// stream of an expression.
func CanonicalCommand() *cli.Command {
	cmd := &canonicalCmd{}
	return &cli.Command{
		Name:        "canonical",
		Description: "canonical parses a token stream file and writes it back fully parenthesized.",
		Usage:       "climb canonical [--output=FILE] FILE",
		ArgsUsage:   "FILE",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *canonicalCmd) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        outputFlagName,
			Usage:       "file to write the token stream to; stdout if empty",
			Destination: &cmd.output,
		},
	}
}

func (cmd *canonicalCmd) action(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.Errorf("canonical: expected 1 input file, got %d", ctx.NArg())
	}
	path := ctx.Args().First()

	toks, err := readTokens(path)
	if err != nil {
		return err
	}
	x, err := parser.Parse(toks)
	if err != nil {
		if werr := writeDiagnostic(ctx.App.ErrWriter, path, toks, err); werr != nil {
			return werr
		}
		return errors.Wrap(err, path)
	}

	canonical, err := printer.Tokens(x)
	if err != nil {
		return err
	}
	data, err := token.Marshal(canonical)
	if err != nil {
		return err
	}

	if cmd.output == "" {
		_, err = ctx.App.Writer.Write(data)
		return err
	}
	if err := os.WriteFile(cmd.output, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", cmd.output)
	}
	log.Infof("wrote %d tokens to %s", len(canonical), cmd.output)
	return nil
}
