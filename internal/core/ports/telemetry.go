package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals the markers planned for export.
	EmitPlan(ctx context.Context, markers []string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Component is the component the span's marker belongs to.
	Component string
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithComponent tags a span with the component of the marker it exports.
func WithComponent(name string) SpanOption {
	return func(c *SpanConfig) {
		c.Component = name
	}
}
