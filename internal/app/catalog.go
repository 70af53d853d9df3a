package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/datagen/internal/adapters/blob"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...)
}

// Markers writes the marker catalog of the given components to w.
// No components lists every marker.
func (a *App) Markers(w io.Writer, components []string) error {
	set := domain.FullComponentSet()
	if len(components) > 0 {
		var err error
		if set, err = domain.ParseComponentSet(components); err != nil {
			return err
		}
	}

	t := newTable("MARKER", "COMPONENT", "TRAITS")
	for _, m := range domain.MarkersFor(set, true) {
		t.Row(m.Name, m.Component.String(), markerTraits(m))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func markerTraits(m domain.Marker) string {
	var traits []string
	if m.Singleton {
		traits = append(traits, "singleton")
	}
	if m.Experimental {
		traits = append(traits, "experimental")
	}
	if m.Compute {
		traits = append(traits, "computed")
	}
	if m.Sparse {
		traits = append(traits, "sparse")
	}
	if len(traits) == 0 {
		return "-"
	}
	return strings.Join(traits, ", ")
}

// Inspect verifies the blob at path and writes a summary of its manifest to w.
// A manifest naming a marker outside the catalog is rejected.
func (a *App) Inspect(w io.Writer, path string) error {
	b, err := blob.Open(path)
	if err != nil {
		return err
	}

	known := make([]domain.Marker, len(b.Manifest.Markers))
	for i, marker := range b.Manifest.Markers {
		m, ok := domain.LookupMarker(marker.Name)
		if !ok {
			return zerr.With(zerr.With(domain.ErrUnknownMarker, "marker", marker.Name), "path", path)
		}
		known[i] = m
	}

	m := b.Manifest
	_, _ = fmt.Fprintf(w, "format:  %s v%d\n", m.Format, m.Version)
	_, _ = fmt.Fprintf(w, "cldr:    %s\n", m.CLDRVersion)
	_, _ = fmt.Fprintf(w, "locales: %s\n", strings.Join(m.Locales, ", "))
	_, _ = fmt.Fprintf(w, "entries: %d (verified)\n", b.EntryCount())

	t := newTable("MARKER", "COMPONENT", "LOCALES", "ALIASES", "TRAITS")
	for i, marker := range m.Markers {
		t.Row(
			marker.Name,
			marker.Component,
			strconv.Itoa(len(marker.Locales)),
			strconv.Itoa(len(marker.Aliases)),
			markerTraits(known[i]),
		)
	}

	_, err = fmt.Fprintln(w, t.Render())
	return err
}
