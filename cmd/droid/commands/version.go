package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/droid/internal/build"
)

func versionLine() string {
	return "droid version " + build.Summary()
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the droid version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionLine())
		},
	}
}
