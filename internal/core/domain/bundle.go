package domain

import (
	"maps"
	"slices"
	"time"
)

// MarkerData holds the serialized payloads of one marker.
type MarkerData struct {
	Marker Marker
	// Entries maps a locale to its JSON payload.
	Entries map[string][]byte
	// Aliases maps a deduplicated locale to the ancestor whose payload it shares.
	Aliases map[string]string
}

// Locales returns the locales with a stored payload, sorted.
func (d *MarkerData) Locales() []string {
	return slices.Sorted(maps.Keys(d.Entries))
}

// Bundle is the in-memory result of an export, ready to be written as a blob.
type Bundle struct {
	// CLDRVersion identifies the source snapshot the bundle was built from.
	CLDRVersion string
	// Locales lists the resolved locales of the request, sorted.
	Locales []string
	// Markers holds one entry per exported marker, sorted by marker name.
	Markers []*MarkerData
}

// EntryCount returns the number of stored payloads across all markers.
func (b *Bundle) EntryCount() int {
	n := 0
	for _, m := range b.Markers {
		n += len(m.Entries)
	}
	return n
}

// ExportResult reports a successful export.
type ExportResult struct {
	Path     string
	Size     int64
	Markers  int
	Entries  int
	Checksum string
	Duration time.Duration
}
