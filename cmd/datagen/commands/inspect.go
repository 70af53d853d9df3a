package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <blob>",
		Short: "Verify a blob and summarize its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Inspect(cmd.OutOrStdout(), args[0])
		},
	}
}
