package app_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/datagen/internal/adapters/config"
	"go.trai.ch/datagen/internal/app"
	"go.trai.ch/datagen/internal/core/domain"
)

func TestOverrides_Apply(t *testing.T) {
	cwd := t.TempDir()

	tests := []struct {
		name      string
		overrides app.Overrides
		check     func(t *testing.T, req domain.ExportRequest)
	}{
		{
			name:      "zero overrides keep the defaults",
			overrides: app.Overrides{},
			check: func(t *testing.T, req domain.ExportRequest) {
				t.Helper()
				assert.Equal(t, config.Defaults(cwd), req)
			},
		},
		{
			name:      "selection",
			overrides: app.Overrides{Components: []string{"plurals", "list"}, Locales: []string{"de"}},
			check: func(t *testing.T, req domain.ExportRequest) {
				t.Helper()
				assert.Equal(t, []string{"list", "plurals"}, req.Components.Names())
				assert.Equal(t, []string{"de"}, req.Locales)
			},
		},
		{
			name:      "relative paths resolve against cwd",
			overrides: app.Overrides{Output: "out/data.blob", CLDRDir: "cldr", CacheDir: "/abs/cache"},
			check: func(t *testing.T, req domain.ExportRequest) {
				t.Helper()
				assert.Equal(t, filepath.Join(cwd, "out", "data.blob"), req.Export.Output)
				assert.Equal(t, filepath.Join(cwd, "cldr"), req.Source.LocalDir)
				assert.Equal(t, "/abs/cache", req.Source.CacheDir)
			},
		},
		{
			name: "switches turn features off",
			overrides: app.Overrides{
				NoNetwork: true, NoCompute: true, NoExperimental: true, NoParallel: true, NoDedupe: true,
				CLDRVersion: "45.0.0",
			},
			check: func(t *testing.T, req domain.ExportRequest) {
				t.Helper()
				assert.False(t, req.Source.Network)
				assert.False(t, req.Source.ComputeFallback)
				assert.False(t, req.Source.Experimental)
				assert.False(t, req.Export.Parallel)
				assert.False(t, req.Export.Dedupe)
				assert.Equal(t, "45.0.0", req.Source.CLDRVersion)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := config.Defaults(cwd)
			require.NoError(t, tt.overrides.Apply(&req, cwd))
			tt.check(t, req)
		})
	}
}

func TestOverrides_ApplyErrors(t *testing.T) {
	req := config.Defaults("/work")

	err := app.Overrides{Components: []string{"bogus"}}.Apply(&req, "/work")
	require.ErrorIs(t, err, domain.ErrUnknownComponent)

	err = app.Overrides{Format: "zip"}.Apply(&req, "/work")
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
