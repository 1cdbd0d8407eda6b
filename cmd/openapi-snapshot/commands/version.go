package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	openapisnapshot "github.com/erraggy/openapi-snapshot"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build metadata",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), openapisnapshot.BuildInfo())
		},
	}
}
