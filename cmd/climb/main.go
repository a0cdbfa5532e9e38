// package main is the main executable for the climb cli.
package main

import (
	"os"

	climbcli "codeberg.org/rileyq/climb/cmd/climb/cli"
)

func main() {
	if err := climbcli.NewApp().Run(os.Args); err != nil {
		climbcli.NewLogger(os.Stderr, false).Error(err)
		os.Exit(1)
	}
}
