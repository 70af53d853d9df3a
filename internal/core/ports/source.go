package ports

import (
	"context"

	"go.trai.ch/datagen/internal/core/domain"
)

// DataSource gives access to raw CLDR JSON documents.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type DataSource interface {
	// Fetch returns the document at path, relative to the cldr-json root
	// (e.g. "cldr-core/supplemental/plurals.json").
	// It returns an error wrapping domain.ErrDataNotFound if the document does not exist.
	Fetch(ctx context.Context, path string) ([]byte, error)

	// Version identifies the snapshot the documents come from.
	Version() string
}

// SourceOpener creates a DataSource for a source configuration.
type SourceOpener interface {
	Open(cfg domain.SourceConfig) (DataSource, error)
}
