// Package exporter plans and runs an export: markers of the selected components,
// loaded for every resolved locale, deduplicated and assembled into a bundle.
package exporter

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Entry results reported to the metrics recorder.
const (
	ResultStored       = "stored"
	ResultSkipped      = "skipped"
	ResultDeduplicated = "deduplicated"
)

// Exporter turns an export request into a bundle.
type Exporter struct {
	tracer  ports.Tracer
	metrics ports.MetricsRecorder
}

// New creates a new Exporter with the given dependencies.
func New(tracer ports.Tracer, metrics ports.MetricsRecorder) *Exporter {
	return &Exporter{
		tracer:  tracer,
		metrics: metrics,
	}
}

// Plan returns the markers exported for the selected components.
// Every selected component must contribute at least one marker.
func Plan(components domain.ComponentSet, experimental bool) ([]domain.Marker, error) {
	if components.Len() == 0 {
		return nil, domain.ErrNoComponentsSelected
	}

	markers := domain.MarkersFor(components, experimental)
	if len(markers) == 0 {
		return nil, zerr.With(domain.ErrComponentWithoutMarkers, "components", components.Len())
	}

	for _, c := range components.Components() {
		if !slices.ContainsFunc(markers, func(m domain.Marker) bool { return m.Component == c }) {
			return nil, zerr.With(domain.ErrComponentWithoutMarkers, "component", c.String())
		}
	}
	return markers, nil
}

// Export loads every planned marker from provider and assembles the bundle.
// The first failing marker cancels the remaining work.
func (e *Exporter) Export(
	ctx context.Context,
	provider ports.DataProvider,
	req domain.ExportRequest,
) (*domain.Bundle, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	markers, err := Plan(req.Components, req.Source.Experimental)
	if err != nil {
		return nil, err
	}

	locales, err := provider.ResolveLocales(ctx, req.Locales)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve locales")
	}

	names := make([]string, len(markers))
	for i, m := range markers {
		names[i] = m.Name
	}
	e.tracer.EmitPlan(ctx, names)

	limit := 1
	if req.Export.Parallel {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var (
		mu      sync.Mutex
		results = make([]*domain.MarkerData, 0, len(markers))
	)

	for _, m := range markers {
		g.Go(func() error {
			data, err := e.exportMarker(gctx, provider, m, locales, req.Export.Dedupe)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, data)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *domain.MarkerData) int {
		return cmp.Compare(a.Marker.Name, b.Marker.Name)
	})

	return &domain.Bundle{
		CLDRVersion: provider.Version(),
		Locales:     locales,
		Markers:     results,
	}, nil
}

// exportMarker loads one marker for every locale within its own span.
func (e *Exporter) exportMarker(
	ctx context.Context,
	provider ports.DataProvider,
	m domain.Marker,
	locales []string,
	dedupe bool,
) (*domain.MarkerData, error) {
	ctx, span := e.tracer.Start(ctx, m.Name, ports.WithComponent(m.Component.String()))
	defer span.End()

	start := time.Now()

	targets := locales
	if m.Singleton {
		targets = []string{domain.RootLocale}
	}

	data := &domain.MarkerData{
		Marker:  m,
		Entries: make(map[string][]byte, len(targets)),
		Aliases: map[string]string{},
	}

	skipped := 0
	for _, locale := range targets {
		payload, err := e.load(ctx, provider, m, locale)
		if err != nil {
			if m.Sparse && errors.Is(err, domain.ErrDataNotFound) {
				skipped++
				_, _ = fmt.Fprintf(span, "no data for %s, skipped\n", locale)
				continue
			}
			span.RecordError(err)
			return nil, err
		}
		data.Entries[locale] = payload
	}

	deduplicated := 0
	if dedupe && !m.Singleton {
		data.Aliases = Dedupe(data.Entries)
		deduplicated = len(data.Aliases)
		if deduplicated > 0 {
			_, _ = fmt.Fprintf(span, "%d locale(s) share an ancestor payload\n", deduplicated)
		}
	}

	span.SetAttribute("datagen.entries", len(data.Entries))
	span.SetAttribute("datagen.skipped", skipped)
	span.SetAttribute("datagen.deduplicated", deduplicated)

	e.metrics.ObserveMarkerDuration(m.Name, time.Since(start))
	e.metrics.IncMarkerEntries(m.Name, ResultStored, len(data.Entries))
	e.metrics.IncMarkerEntries(m.Name, ResultSkipped, skipped)
	e.metrics.IncMarkerEntries(m.Name, ResultDeduplicated, deduplicated)

	return data, nil
}

func (e *Exporter) load(
	ctx context.Context,
	provider ports.DataProvider,
	m domain.Marker,
	locale string,
) ([]byte, error) {
	payload, err := provider.Load(ctx, m, locale)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, err
		}
		loadErr := zerr.With(zerr.Wrap(err, "failed to load marker"), "marker", m.Name)
		return nil, zerr.With(loadErr, "locale", locale)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		marshalErr := zerr.With(zerr.Wrap(err, domain.ErrPayloadMarshalFailed.Error()), "marker", m.Name)
		return nil, zerr.With(marshalErr, "locale", locale)
	}
	return data, nil
}
