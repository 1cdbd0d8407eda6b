package main

import (
	"fmt"
	"os"

	"github.com/erraggy/openapi-snapshot/cmd/openapi-snapshot/commands"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

func main() {
	root := commands.NewRootCmd()
	if err := root.Execute(); err != nil {
		// Cobra is configured to not print errors. Make sure users still
		// get a message before the mapped exit code.
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(snaperrors.ExitCode(err))
	}
}
