// Package cli implements the climb subcommands.
package cli

import (
	"io"
	"os"

	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"codeberg.org/rileyq/climb/internal/compile/token"
)

// flag names
const (
	verboseFlagName = "verbose"
	formatFlagName  = "format"
	jobsFlagName    = "jobs"
	outputFlagName  = "output"
)

var log = NewLogger(os.Stderr, false)

// NewApp returns the climb application. Logs go to the app's ErrWriter.
func NewApp() *cli.App {
	return &cli.App{
		Name:        "climb",
		Usage:       "parse arithmetic expressions from lexer token streams",
		Description: "climb reads token streams (YAML or JSON lists written by a lexer) and parses each one as a single expression.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  verboseFlagName,
				Usage: "log debug output",
			},
		},
		Before: func(ctx *cli.Context) error {
			w := ctx.App.ErrWriter
			if w == nil {
				w = os.Stderr
			}
			log = NewLogger(w, ctx.Bool(verboseFlagName))
			return nil
		},
		Commands: []*cli.Command{
			ParseCommand(),
			CanonicalCommand(),
		},
	}
}

// NewLogger returns a logger writing to w. Debug lines are only written when
// verbose is set.
func NewLogger(w io.Writer, verbose bool) *logger.Logger {
	sw, ok := w.(logger.SyncWriter)
	if !ok {
		sw = nopSyncWriter{w}
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   sw,
		IncludeDebug: verbose,
	})
}

type nopSyncWriter struct {
	io.Writer
}

func (nopSyncWriter) Sync() error {
	return nil
}

func readTokens(path string) ([]token.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	toks, err := token.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	log.Debugf("read %d tokens from %s", len(toks), path)
	return toks, nil
}
