package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "datagen"

var _ ports.MetricsRecorder = (*PrometheusRecorder)(nil)

// PrometheusRecorder implements ports.MetricsRecorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg            *prom.Registry
	path           string
	markerDuration *prom.HistogramVec
	markerEntries  *prom.CounterVec
	exportDuration prom.Histogram
	exportOutcome  *prom.CounterVec
	blobSize       prom.Gauge
}

// NewPrometheusRecorder constructs and registers the export metrics on reg.
// A nil reg creates a private registry. Flush writes to path unless it is empty.
func NewPrometheusRecorder(reg *prom.Registry, path string) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg:  reg,
		path: path,
		markerDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "marker_duration_seconds",
			Help:      "Duration of individual marker exports",
			Buckets:   prom.DefBuckets,
		}, []string{"marker"}),
		markerEntries: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "marker_entries_total",
			Help:      "Locale payloads per marker by result",
		}, []string{"marker", "result"}),
		exportDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Total export duration",
			Buckets:   prom.DefBuckets,
		}),
		exportOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "export_outcomes_total",
			Help:      "Exports by final status",
		}, []string{"outcome"}),
		blobSize: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "blob_size_bytes",
			Help:      "Size of the last written blob",
		}),
	}
	reg.MustRegister(pr.markerDuration, pr.markerEntries, pr.exportDuration, pr.exportOutcome, pr.blobSize)
	return pr
}

// ObserveMarkerDuration records how long one marker took to load for every locale.
func (p *PrometheusRecorder) ObserveMarkerDuration(marker string, d time.Duration) {
	if p == nil {
		return
	}
	p.markerDuration.WithLabelValues(marker).Observe(d.Seconds())
}

// IncMarkerEntries adds n entries of a marker with the given result. Non-positive n is ignored.
func (p *PrometheusRecorder) IncMarkerEntries(marker, result string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.markerEntries.WithLabelValues(marker, result).Add(float64(n))
}

// ObserveExport records the duration and outcome of a whole export.
func (p *PrometheusRecorder) ObserveExport(outcome string, d time.Duration) {
	if p == nil {
		return
	}
	p.exportDuration.Observe(d.Seconds())
	p.exportOutcome.WithLabelValues(outcome).Inc()
}

// SetBlobSize records the size in bytes of the written blob.
func (p *PrometheusRecorder) SetBlobSize(bytes int64) {
	if p == nil {
		return
	}
	p.blobSize.Set(float64(bytes))
}

// Flush writes the gathered metrics to the textfile path, atomically.
func (p *PrometheusRecorder) Flush() error {
	if p == nil || p.path == "" {
		return nil
	}
	if err := prom.WriteToTextfile(p.path, p.reg); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", p.path)
	}
	return nil
}
