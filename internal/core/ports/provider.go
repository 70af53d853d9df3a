package ports

import (
	"context"

	"go.trai.ch/datagen/internal/core/domain"
)

// DataProvider loads marker payloads.
//
//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type DataProvider interface {
	// ResolveLocales expands the requested selection (tags or the modern/full selectors)
	// into a sorted list of canonical locale tags.
	ResolveLocales(ctx context.Context, selection []string) ([]string, error)

	// Load returns the JSON-serializable payload of marker for locale.
	// It returns an error wrapping domain.ErrDataNotFound if the source has no data for the locale.
	Load(ctx context.Context, marker domain.Marker, locale string) (any, error)

	// Version identifies the source snapshot the payloads come from.
	Version() string
}

// ProviderFactory creates the component providers for a source configuration.
type ProviderFactory interface {
	NewProvider(cfg domain.SourceConfig) (DataProvider, error)
}
