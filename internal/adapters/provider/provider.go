// Package provider implements the DataProvider port: one loader per data marker,
// built from cldr-json documents and the Unicode tables in golang.org/x/text.
package provider

import (
	"context"

	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports"
	"go.trai.ch/zerr"
)

// loader builds the payload of one marker for one locale.
type loader func(ctx context.Context, locale string) (any, error)

// Provider implements ports.DataProvider over a DataSource.
type Provider struct {
	source  ports.DataSource
	compute bool
	loaders map[string]loader
}

// New creates a Provider reading from source.
// compute permits markers derived from the x/text tables.
func New(source ports.DataSource, compute bool) *Provider {
	p := &Provider{
		source:  source,
		compute: compute,
	}
	p.loaders = map[string]loader{
		domain.MarkerCaseMapExceptions:       p.loadCaseMapExceptions,
		domain.MarkerCollatorExemplars:       p.loadCollatorExemplars,
		domain.MarkerDateTimeGregorianNames:  p.loadGregorianNames,
		domain.MarkerDateTimeGregorianFormat: p.loadGregorianPatterns,
		domain.MarkerDateTimeSkeletons:       p.loadGregorianSkeletons,
		domain.MarkerDecimalSymbols:          p.loadDecimalSymbols,
		domain.MarkerListAnd:                 p.listLoader(listTypeAnd),
		domain.MarkerListOr:                  p.listLoader(listTypeOr),
		domain.MarkerListUnit:                p.listLoader(listTypeUnit),
		domain.MarkerLocaleLikelySubtags:     p.loadLikelySubtags,
		domain.MarkerLocaleParents:           p.loadParentLocales,
		domain.MarkerLocaleLanguageMatching:  p.loadLanguageMatching,
		domain.MarkerNormalizerNFD:           p.loadNFD,
		domain.MarkerNormalizerNFKD:          p.loadNFKD,
		domain.MarkerPluralsCardinal:         p.pluralLoader(pluralTypeCardinal),
		domain.MarkerPluralsOrdinal:          p.pluralLoader(pluralTypeOrdinal),
		domain.MarkerSegmenterSuppressions:   p.loadSentenceSuppressions,
	}
	return p
}

// Version returns the source snapshot version.
func (p *Provider) Version() string {
	return p.source.Version()
}

// Load returns the payload of marker for locale.
func (p *Provider) Load(ctx context.Context, marker domain.Marker, locale string) (any, error) {
	load, ok := p.loaders[marker.Name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownMarker, "marker", marker.Name)
	}

	if marker.Compute && !p.compute {
		return nil, zerr.With(zerr.Wrap(domain.ErrComputeDisabled, "cannot derive marker"), "marker", marker.Name)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return load(ctx, locale)
}
