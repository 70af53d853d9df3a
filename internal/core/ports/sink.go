package ports

import (
	"context"

	"go.trai.ch/datagen/internal/core/domain"
)

// BlobSink persists an export bundle.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type BlobSink interface {
	// Write serializes the bundle to path atomically. On failure no file is left at path.
	Write(ctx context.Context, path string, bundle *domain.Bundle) (*domain.ExportResult, error)
}
