package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/datagen/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with NO_COLOR=1 for deterministic output.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "wrote locale_data.blob", goldenName: "info_basic"},
		{name: "empty message", msg: "", goldenName: "info_empty"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("segmenter data missing for 3 locale(s)")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String(), "debug output should be suppressed at info level")

	lg.SetVerbose(true)
	lg.Debug("fetching cldr-core/supplemental/plurals.json")

	g := goldie.New(t)
	g.Assert(t, "debug_verbose", buf.Bytes())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{name: "simple error", err: os.ErrPermission, goldenName: "error_simple"},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name:       "two level chain",
			err:        zerr.Wrap(errors.New("connection refused"), "failed to request CLDR data"),
			goldenName: "error_chain_zerr_two",
		},
		{
			name: "three level chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("connection refused"), "failed to request CLDR data"),
				"failed to load marker",
			),
			goldenName: "error_chain_zerr_three",
		},
		{
			name: "joined with export failed",
			err: errors.Join(
				zerr.New("export failed"),
				zerr.Wrap(errors.New("disk full"), "failed to write blob"),
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	inner := errors.New("connection refused")
	outer := fmt.Errorf("failed to fetch: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "✗ Error: failed to fetch: connection refused\n", buf.String())
}

func TestLogger_Error_WithMetadata(t *testing.T) {
	err := zerr.With(zerr.New("locale data not found"), "path", "cldr-misc-full/main/xx/listPatterns.json")

	lg, buf := newTestLogger(t)
	lg.Error(err)

	assert.Contains(t, buf.String(), "Error: locale data not found")
	assert.Contains(t, buf.String(), "path=cldr-misc-full/main/xx/listPatterns.json")
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.Wrap(errors.New("disk full"), "failed to write blob"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error"`)
	assert.Contains(t, out, "failed to write blob")
	assert.NotContains(t, out, "✗")

	buf.Reset()
	lg.SetJSON(false)
	lg.Error(errors.New("back to pretty"))
	assert.Equal(t, "✗ Error: back to pretty\n", buf.String())
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch i % 4 {
			case 0:
				lg.Info("info")
			case 1:
				lg.Warn("warn")
			case 2:
				lg.Error(errors.New("error"))
			default:
				lg.SetJSON(i%2 == 0)
			}
		}()
	}
	wg.Wait()
}
