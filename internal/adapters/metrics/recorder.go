// Package metrics records export metrics with Prometheus collectors and
// writes them as a node_exporter textfile.
package metrics

import (
	"time"

	"go.trai.ch/datagen/internal/core/ports"
)

// Export outcomes recorded by ObserveExport.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeCanceled = "canceled"
)

var _ ports.MetricsRecorder = NoopRecorder{}

// NoopRecorder is a ports.MetricsRecorder that does nothing (default when no metrics file is configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveMarkerDuration(string, time.Duration) {}
func (NoopRecorder) IncMarkerEntries(string, string, int)        {}
func (NoopRecorder) ObserveExport(string, time.Duration)         {}
func (NoopRecorder) SetBlobSize(int64)                           {}
func (NoopRecorder) Flush() error                                { return nil }

// New returns a Prometheus recorder flushing to path, or a NoopRecorder when path is empty.
func New(path string) ports.MetricsRecorder {
	if path == "" {
		return NoopRecorder{}
	}
	return NewPrometheusRecorder(nil, path)
}
