package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/datagen/internal/adapters/metrics"
	"go.trai.ch/datagen/internal/core/domain"
)

func gather(t *testing.T, reg *prom.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		out[mf.GetName()] = mf
	}
	return out
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := metrics.NewPrometheusRecorder(reg, "")

	pr.ObserveMarkerDuration("plurals/cardinal@1", 150*time.Millisecond)
	pr.IncMarkerEntries("plurals/cardinal@1", "stored", 3)
	pr.IncMarkerEntries("plurals/cardinal@1", "deduplicated", 2)
	pr.IncMarkerEntries("plurals/cardinal@1", "skipped", 0)
	pr.ObserveExport(metrics.OutcomeSuccess, 500*time.Millisecond)
	pr.SetBlobSize(2048)

	mfs := gather(t, reg)

	entries := mfs["datagen_marker_entries_total"]
	require.NotNil(t, entries)
	assert.Len(t, entries.GetMetric(), 2, "zero increments create no series")

	var stored float64
	for _, m := range entries.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "result" && l.GetValue() == "stored" {
				stored = m.GetCounter().GetValue()
			}
		}
	}
	assert.InDelta(t, 3.0, stored, 0.001)

	size := mfs["datagen_blob_size_bytes"]
	require.NotNil(t, size)
	assert.InDelta(t, 2048.0, size.GetMetric()[0].GetGauge().GetValue(), 0.001)

	assert.Contains(t, mfs, "datagen_marker_duration_seconds")
	assert.Contains(t, mfs, "datagen_export_duration_seconds")
	assert.Contains(t, mfs, "datagen_export_outcomes_total")

	require.NoError(t, pr.Flush(), "flush without a path is a no-op")
}

func TestPrometheusRecorder_Flush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datagen.prom")
	pr := metrics.NewPrometheusRecorder(nil, path)
	pr.ObserveExport(metrics.OutcomeFailure, time.Second)

	require.NoError(t, pr.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `datagen_export_outcomes_total{outcome="failure"} 1`)
}

func TestPrometheusRecorder_FlushFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "datagen.prom")
	pr := metrics.NewPrometheusRecorder(nil, path)

	err := pr.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMetricsWriteFailed.Error())
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *metrics.PrometheusRecorder

	pr.ObserveMarkerDuration("x", time.Second)
	pr.IncMarkerEntries("x", "stored", 1)
	pr.ObserveExport(metrics.OutcomeSuccess, time.Second)
	pr.SetBlobSize(1)
	assert.NoError(t, pr.Flush())
}

func TestNew(t *testing.T) {
	assert.IsType(t, metrics.NoopRecorder{}, metrics.New(""))
	assert.IsType(t, &metrics.PrometheusRecorder{}, metrics.New(filepath.Join(t.TempDir(), "m.prom")))

	noop := metrics.NoopRecorder{}
	noop.ObserveMarkerDuration("x", time.Second)
	noop.IncMarkerEntries("x", "stored", 1)
	noop.ObserveExport(metrics.OutcomeSuccess, time.Second)
	noop.SetBlobSize(1)
	assert.NoError(t, noop.Flush())
}
