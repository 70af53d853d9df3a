package ports

import "time"

// MetricsRecorder defines observability hooks for export metrics.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type MetricsRecorder interface {
	// ObserveMarkerDuration records how long exporting a marker took.
	ObserveMarkerDuration(marker string, d time.Duration)
	// IncMarkerEntries counts payloads stored, skipped or deduplicated for a marker.
	IncMarkerEntries(marker, result string, n int)
	// ObserveExport records the outcome and duration of the whole export.
	ObserveExport(outcome string, d time.Duration)
	// SetBlobSize records the size of the written blob.
	SetBlobSize(bytes int64)
	// Flush persists the metrics, if the recorder has a destination.
	Flush() error
}
