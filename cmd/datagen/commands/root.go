// Package commands implements the CLI commands for datagen.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/datagen/internal/app"
	"go.trai.ch/datagen/internal/build"
	"go.trai.ch/datagen/internal/core/domain"
)

// CLI represents the command line interface for datagen.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Export(ctx context.Context, opts app.ExportOptions) (*domain.ExportResult, error)
	Markers(w io.Writer, components []string) error
	Inspect(w io.Writer, path string) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	ConfigureLogging(verbose, json bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "datagen",
		Short:         "Export locale data into a single blob",
		Long:          "datagen exports CLDR locale data for the selected components into one deterministic blob.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			jsonLog, _ := cmd.Flags().GetBool("json-log")
			c.app.ConfigureLogging(verbose, jsonLog)
		},
		RunE: c.runExport,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file (default datagen.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-log", false, "Log as JSON")
	addExportFlags(rootCmd)

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newMarkersCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
