package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorbush/rusty-pomo/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rusty-pomo version %s\n", version.Get())
		},
	}
}
