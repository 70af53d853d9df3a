package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/datagen/internal/core/domain"
)

func validRequest() domain.ExportRequest {
	return domain.ExportRequest{
		Components: domain.FullComponentSet(),
		Locales:    []string{"en"},
		Source:     domain.SourceConfig{Network: true, ComputeFallback: true, Experimental: true},
		Export:     domain.ExportConfig{Format: domain.FormatBlob, Output: "out.blob", Parallel: true},
	}
}

func TestExportRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.ExportRequest)
		wantErr error
	}{
		{"valid", func(_ *domain.ExportRequest) {}, nil},
		{"no components", func(r *domain.ExportRequest) { r.Components = 0 }, domain.ErrNoComponentsSelected},
		{"missing output", func(r *domain.ExportRequest) { r.Export.Output = " " }, domain.ErrMissingOutputPath},
		{"no locales", func(r *domain.ExportRequest) { r.Locales = nil }, domain.ErrNoLocalesSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExportRequest_ValidateFormat(t *testing.T) {
	r := validRequest()
	r.Export.Format = "fs"

	err := r.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedFormat.Error())
}

func TestParseFormat(t *testing.T) {
	f, err := domain.ParseFormat("BLOB")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatBlob, f)

	f, err = domain.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatBlob, f)

	_, err = domain.ParseFormat("postcard")
	assert.Error(t, err)
}
