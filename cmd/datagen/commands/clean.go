package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/datagen/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the CLDR document cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			all, _ := cmd.Flags().GetBool("all")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: configPath,
				CacheDir:   cacheDir,
				Blob:       all,
			})
		},
	}

	cmd.Flags().String("cache-dir", "", "Directory caching fetched CLDR documents")
	cmd.Flags().BoolP("all", "a", false, "Also remove the output blob")

	return cmd
}
