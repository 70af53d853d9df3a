package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Format is the shape of the export artifact.
type Format string

// FormatBlob produces a single-file blob holding every exported marker.
const FormatBlob Format = "blob"

// ParseFormat resolves an export format from its name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatBlob, "":
		return FormatBlob, nil
	default:
		return "", zerr.With(ErrUnsupportedFormat, "format", name)
	}
}

// Locale selectors that expand to a CLDR coverage level instead of naming tags.
const (
	LocalesModern = "modern"
	LocalesFull   = "full"
)

// SourceConfig configures the provider source.
type SourceConfig struct {
	// CLDRVersion is the cldr-json release tag, e.g. "46.0.0".
	CLDRVersion string
	// BaseURL is the root the release tag and document paths are appended to.
	BaseURL string
	// LocalDir, when set, is a cldr-json checkout read instead of the network.
	LocalDir string
	// CacheDir holds documents fetched over the network.
	CacheDir string
	// Network permits fetching documents over HTTP.
	Network bool
	// ComputeFallback permits deriving markers from the Unicode tables in x/text.
	ComputeFallback bool
	// Experimental enables experimental markers.
	Experimental bool
}

// ExportConfig configures the export target.
type ExportConfig struct {
	Format Format
	// Output is the file path of the blob.
	Output string
	// Parallel exports markers concurrently.
	Parallel bool
	// Dedupe drops locale payloads identical to their nearest exported ancestor.
	Dedupe bool
}

// ExportRequest is the complete, immutable input of one export run.
type ExportRequest struct {
	Components ComponentSet
	// Locales holds locale tags or one of the LocalesModern/LocalesFull selectors.
	Locales []string
	Source  SourceConfig
	Export  ExportConfig
}

// Validate checks the request for values the export cannot start with.
func (r ExportRequest) Validate() error {
	if r.Components.Len() == 0 {
		return ErrNoComponentsSelected
	}
	if r.Export.Format != FormatBlob {
		return zerr.With(ErrUnsupportedFormat, "format", string(r.Export.Format))
	}
	if strings.TrimSpace(r.Export.Output) == "" {
		return ErrMissingOutputPath
	}
	if len(r.Locales) == 0 {
		return ErrNoLocalesSelected
	}
	return nil
}
