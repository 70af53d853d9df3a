package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/datagen/internal/adapters/telemetry"
	"go.trai.ch/datagen/internal/core/ports"
	"go.trai.ch/datagen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func attr(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestOTelTracer_Start_RecordsSpan(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "plurals/cardinal@1", ports.WithComponent("plurals"))
	span.SetAttribute("datagen.entries", 3)
	span.SetAttribute("datagen.size", int64(42))
	span.SetAttribute("datagen.ratio", 0.5)
	span.SetAttribute("datagen.dedupe", true)
	span.SetAttribute("datagen.locales", []string{"en", "de"})
	span.SetAttribute("datagen.name", "x")
	span.SetAttribute("datagen.other", time.Second)
	_, err := span.Write([]byte("no data for tr, skipped\n"))
	require.NoError(t, err)
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	s := ended[0]
	assert.Equal(t, "plurals/cardinal@1", s.Name())

	v, ok := attr(s.Attributes(), telemetry.AttrComponent)
	require.True(t, ok)
	assert.Equal(t, "plurals", v.AsString())

	v, ok = attr(s.Attributes(), "datagen.entries")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.AsInt64())

	v, ok = attr(s.Attributes(), "datagen.other")
	require.True(t, ok)
	assert.Equal(t, "1s", v.AsString())

	require.Len(t, s.Events(), 1)
	assert.Equal(t, "log", s.Events()[0].Name)
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "list/and@1")
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr := setupRecorder(t)
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	mockRenderer.EXPECT().OnPlanEmit([]string{"a@1", "b@1"}).Times(2)
	mockRenderer.EXPECT().OnTaskLog(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := telemetry.NewOTelTracer("test").WithRenderer(mockRenderer)

	// Without a recording span only the renderer hears about the plan.
	tracer.EmitPlan(context.Background(), []string{"a@1", "b@1"})
	assert.Empty(t, sr.Ended())

	ctx, root := otel.Tracer("test").Start(context.Background(), "export")
	tracer.EmitPlan(ctx, []string{"a@1", "b@1"})
	root.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "plan_emitted", ended[0].Events()[0].Name)
}

func TestOTelTracer_WithRenderer_StreamsOutput(t *testing.T) {
	setupRecorder(t)
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	var (
		mu   sync.Mutex
		logs []string
	)
	mockRenderer.EXPECT().OnTaskLog(gomock.Any(), gomock.Any()).Do(func(_ string, data []byte) {
		mu.Lock()
		defer mu.Unlock()
		logs = append(logs, string(data))
	}).AnyTimes()

	tracer := telemetry.NewOTelTracer("test").WithRenderer(mockRenderer)

	_, span := tracer.Start(context.Background(), "segmenter/sentence-suppressions@1")
	otelSpan, ok := span.(*telemetry.OTelSpan)
	require.True(t, ok)
	assert.NotNil(t, otelSpan.Batcher())

	_, err := span.Write([]byte("no data for tr, "))
	require.NoError(t, err)
	_, err = span.Write([]byte("skipped\n"))
	require.NoError(t, err)
	span.End()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "no data for tr, skipped\n", strings.Join(logs, ""))
}

func TestBridge_ForwardsLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	var startID, endID string
	gomock.InOrder(
		mockRenderer.EXPECT().OnTaskStart(gomock.Any(), "decimal/symbols@1", gomock.Any()).
			Do(func(id, _ string, _ time.Time) { startID = id }),
		mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), nil).
			Do(func(id string, _ time.Time, _ error) { endID = id }),
	)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockRenderer)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "decimal/symbols@1")
	span.End()

	assert.NotEmpty(t, startID)
	assert.Equal(t, startID, endID)
}

func TestBridge_ReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	mockRenderer.EXPECT().OnTaskStart(gomock.Any(), gomock.Any(), gomock.Any())
	mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ time.Time, err error) {
			require.Error(t, err)
			assert.Equal(t, "locale data not found", err.Error())
		})

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockRenderer)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "list/or@1")
	span.SetStatus(codes.Error, "locale data not found")
	span.End()
}

func TestBridge_NilRenderer(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	span.End()

	assert.NoError(t, bridge.ForceFlush(context.Background()))
	assert.NoError(t, bridge.Shutdown(context.Background()))
}

func TestSetup_InstallsBridge(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	mockRenderer.EXPECT().OnTaskStart(gomock.Any(), "casemap/exceptions@1", gomock.Any())
	mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), nil)

	shutdown := telemetry.Setup(mockRenderer)
	defer func() { _ = shutdown(context.Background()) }()

	_, span := telemetry.NewOTelTracer("test").Start(context.Background(), "casemap/exceptions@1")
	span.End()
}
