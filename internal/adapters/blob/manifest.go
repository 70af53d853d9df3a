// Package blob implements the blob sink: a deterministic gzip-compressed tar archive
// holding a manifest followed by one JSON document per marker and locale.
package blob

import (
	"cmp"
	"fmt"
	"path"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/datagen/internal/core/domain"
)

const (
	// FormatName identifies datagen blobs in the manifest.
	FormatName = "datagen-blob"
	// FormatVersion is the layout version written to the manifest.
	FormatVersion = 1
	// ManifestName is the name of the first archive entry.
	ManifestName = "manifest.json"
)

// Manifest describes the contents of a blob.
type Manifest struct {
	Format      string           `json:"format"`
	Version     int              `json:"version"`
	CLDRVersion string           `json:"cldrVersion"`
	Locales     []string         `json:"locales"`
	Markers     []ManifestMarker `json:"markers"`
	Entries     []ManifestEntry  `json:"entries"`
}

// ManifestMarker lists the stored locales and aliases of one marker.
type ManifestMarker struct {
	Name      string            `json:"name"`
	Component string            `json:"component"`
	Locales   []string          `json:"locales"`
	Aliases   map[string]string `json:"aliases,omitempty"`
}

// ManifestEntry records the size and xxhash64 of one payload entry.
type ManifestEntry struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
	Hash string `json:"hash"`
}

// EntryPath returns the archive path of a marker payload.
func EntryPath(marker, locale string) string {
	return path.Join(marker, locale+".json")
}

func hashBytes(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

type entry struct {
	path string
	data []byte
}

// layout builds the manifest and the ordered payload entries of a bundle.
// Markers are ordered by name and locales are sorted per marker.
func layout(bundle *domain.Bundle) (*Manifest, []entry) {
	markers := slices.Clone(bundle.Markers)
	slices.SortFunc(markers, func(a, b *domain.MarkerData) int {
		return cmp.Compare(a.Marker.Name, b.Marker.Name)
	})

	locales := append([]string{}, bundle.Locales...)
	slices.Sort(locales)

	manifest := &Manifest{
		Format:      FormatName,
		Version:     FormatVersion,
		CLDRVersion: bundle.CLDRVersion,
		Locales:     locales,
		Markers:     make([]ManifestMarker, 0, len(markers)),
		Entries:     []ManifestEntry{},
	}

	var entries []entry
	for _, m := range markers {
		locales := m.Locales()
		mm := ManifestMarker{
			Name:      m.Marker.Name,
			Component: m.Marker.Component.String(),
			Locales:   locales,
		}
		if len(m.Aliases) > 0 {
			mm.Aliases = m.Aliases
		}
		manifest.Markers = append(manifest.Markers, mm)

		for _, locale := range locales {
			data := m.Entries[locale]
			p := EntryPath(m.Marker.Name, locale)
			entries = append(entries, entry{path: p, data: data})
			manifest.Entries = append(manifest.Entries, ManifestEntry{
				Path: p,
				Size: int64(len(data)),
				Hash: hashBytes(data),
			})
		}
	}
	return manifest, entries
}
