package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMarkersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markers",
		Short: "List the data markers of each component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			components, _ := cmd.Flags().GetStringSlice("components")
			return c.app.Markers(cmd.OutOrStdout(), components)
		},
	}
	cmd.Flags().StringSlice("components", nil, "Only list markers of these components")
	return cmd
}
