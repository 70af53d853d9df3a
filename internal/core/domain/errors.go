package domain

import "go.trai.ch/zerr"

var (
	// ErrExportFailed is the single user-facing error class. Every failure of the export
	// call is joined with it before it reaches the CLI.
	ErrExportFailed = zerr.New("export failed")

	// ErrUnknownComponent is returned when a component name does not match any known component.
	ErrUnknownComponent = zerr.New("unknown component")

	// ErrNoComponentsSelected is returned when the export request selects no components.
	ErrNoComponentsSelected = zerr.New("no components selected")

	// ErrComponentWithoutMarkers is returned when a selected component contributes no markers to the plan.
	ErrComponentWithoutMarkers = zerr.New("component has no markers to export")

	// ErrUnknownMarker is returned when a provider is asked for a marker it does not serve.
	ErrUnknownMarker = zerr.New("unknown data marker")

	// ErrUnsupportedFormat is returned when an export format other than blob is requested.
	ErrUnsupportedFormat = zerr.New("unsupported export format, expected 'blob'")

	// ErrMissingOutputPath is returned when the export request has no output path.
	ErrMissingOutputPath = zerr.New("missing output path")

	// ErrNoLocalesSelected is returned when locale resolution yields no locales.
	ErrNoLocalesSelected = zerr.New("no locales selected")

	// ErrInvalidLocale is returned when a locale identifier cannot be parsed.
	ErrInvalidLocale = zerr.New("invalid locale identifier")

	// ErrNetworkDisabled is returned when remote data is needed but network access is not permitted.
	ErrNetworkDisabled = zerr.New("network access is disabled and no local CLDR directory is configured")

	// ErrComputeDisabled is returned when a marker needs the computation fallback but it is disabled.
	ErrComputeDisabled = zerr.New("marker requires the computation fallback, which is disabled")

	// ErrDataNotFound is returned when the source has no document for the requested path or locale.
	ErrDataNotFound = zerr.New("locale data not found")

	// ErrSourceRequestFailed is returned when an HTTP request to the CLDR source fails.
	ErrSourceRequestFailed = zerr.New("failed to request CLDR data")

	// ErrSourceReadFailed is returned when a CLDR document cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read CLDR data")

	// ErrInvalidCLDRDocument is returned when a CLDR document does not have the expected envelope.
	ErrInvalidCLDRDocument = zerr.New("data does not appear to be CLDR data")

	// ErrCacheCreateFailed is returned when the source cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create source cache directory")

	// ErrCacheWriteFailed is returned when a document cannot be written to the source cache.
	ErrCacheWriteFailed = zerr.New("failed to write source cache entry")

	// ErrPayloadMarshalFailed is returned when a marker payload cannot be serialized.
	ErrPayloadMarshalFailed = zerr.New("failed to marshal marker payload")

	// ErrBlobWriteFailed is returned when the blob file cannot be written.
	ErrBlobWriteFailed = zerr.New("failed to write blob")

	// ErrBlobReadFailed is returned when a blob file cannot be read.
	ErrBlobReadFailed = zerr.New("failed to read blob")

	// ErrBlobCorrupt is returned when a blob entry does not match its manifest.
	ErrBlobCorrupt = zerr.New("blob entry does not match manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfigValue is returned when a configuration value is out of range.
	ErrInvalidConfigValue = zerr.New("invalid configuration value")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
