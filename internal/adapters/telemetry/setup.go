package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/datagen/internal/core/ports"
)

// Setup installs a global tracer provider whose spans are reported to renderer
// and returns the provider's shutdown function.
func Setup(renderer ports.Renderer) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
