package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/datagen/internal/app"
)

func addExportFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", "", "Blob output path (default locale_data.blob)")
	f.String("format", "", "Export format (only blob is supported)")
	f.StringSlice("locales", nil, "Locales to export, or modern/full for a CLDR coverage level")
	f.StringSlice("components", nil, "Components to export (default all)")
	f.String("cldr-version", "", "cldr-json release to export")
	f.String("cldr-dir", "", "Read CLDR documents from a local cldr-json checkout")
	f.String("cache-dir", "", "Directory caching fetched CLDR documents")
	f.Bool("no-network", false, "Forbid fetching CLDR documents over the network")
	f.Bool("no-compute", false, "Disable markers computed from the Unicode tables")
	f.Bool("no-experimental", false, "Skip experimental markers")
	f.Bool("no-parallel", false, "Export markers one at a time")
	f.Bool("no-dedupe", false, "Keep payloads identical to their parent locale")
	f.String("output-mode", "auto", "Output mode: auto, tui, or linear")
	f.String("metrics-file", "", "Write export metrics to this file in the Prometheus text format")
}

func (c *CLI) runExport(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()

	configPath, _ := f.GetString("config")
	outputMode, _ := f.GetString("output-mode")
	metricsFile, _ := f.GetString("metrics-file")

	var o app.Overrides
	o.Output, _ = f.GetString("output")
	o.Format, _ = f.GetString("format")
	o.Locales, _ = f.GetStringSlice("locales")
	o.Components, _ = f.GetStringSlice("components")
	o.CLDRVersion, _ = f.GetString("cldr-version")
	o.CLDRDir, _ = f.GetString("cldr-dir")
	o.CacheDir, _ = f.GetString("cache-dir")
	o.NoNetwork, _ = f.GetBool("no-network")
	o.NoCompute, _ = f.GetBool("no-compute")
	o.NoExperimental, _ = f.GetBool("no-experimental")
	o.NoParallel, _ = f.GetBool("no-parallel")
	o.NoDedupe, _ = f.GetBool("no-dedupe")

	_, err := c.app.Export(cmd.Context(), app.ExportOptions{
		ConfigPath:  configPath,
		Overrides:   o,
		OutputMode:  outputMode,
		MetricsFile: metricsFile,
	})
	return err
}
