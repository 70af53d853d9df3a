package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/datagen/internal/adapters/config"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	dir := t.TempDir()

	req, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, domain.FullComponentSet(), req.Components)
	assert.Equal(t, domain.DefaultLocales, req.Locales)
	assert.True(t, req.Source.Network)
	assert.True(t, req.Source.ComputeFallback)
	assert.True(t, req.Source.Experimental)
	assert.Equal(t, domain.DefaultCLDRVersion, req.Source.CLDRVersion)
	assert.Equal(t, domain.DefaultBaseURL, req.Source.BaseURL)
	assert.Equal(t, filepath.Join(dir, domain.DefaultCLDRCachePath()), req.Source.CacheDir)
	assert.Equal(t, domain.FormatBlob, req.Export.Format)
	assert.Equal(t, filepath.Join(dir, domain.DefaultOutput), req.Export.Output)
	assert.True(t, req.Export.Parallel)
	assert.True(t, req.Export.Dedupe)
	assert.NoError(t, req.Validate())
}

func TestLoader_Load_Datafile(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
components: [plurals, list]
locales: [en, de]
source:
  cldrVersion: "45.0.0"
  localDir: cldr-json
  network: false
  experimental: false
export:
  format: blob
  output: out/data.blob
  parallel: false
`)

	req, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, domain.NewComponentSet(domain.ComponentPlurals, domain.ComponentList), req.Components)
	assert.Equal(t, []string{"en", "de"}, req.Locales)
	assert.Equal(t, "45.0.0", req.Source.CLDRVersion)
	assert.Equal(t, filepath.Join(dir, "cldr-json"), req.Source.LocalDir)
	assert.False(t, req.Source.Network)
	assert.True(t, req.Source.ComputeFallback, "omitted keys keep their default")
	assert.False(t, req.Source.Experimental)
	assert.Equal(t, filepath.Join(dir, "out", "data.blob"), req.Export.Output)
	assert.False(t, req.Export.Parallel)
	assert.True(t, req.Export.Dedupe)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "conf/custom.yaml", "locales: [fr]\nexport:\n  output: /tmp/abs.blob\n")

	req, err := newLoader(t).Load(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fr"}, req.Locales)
	assert.Equal(t, "/tmp/abs.blob", req.Export.Output)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
		wantErr error
	}{
		{name: "explicit file missing", path: "missing.yaml", wantErr: domain.ErrConfigReadFailed},
		{name: "invalid yaml", content: "locales: [en\n", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown key", content: "lokales: [en]\n", wantErr: domain.ErrConfigParseFailed},
		{name: "unsupported version", content: "version: \"2\"\n", wantErr: domain.ErrInvalidConfigValue},
		{name: "unknown component", content: "components: [emoji]\n", wantErr: domain.ErrUnknownComponent},
		{name: "unsupported format", content: "export:\n  format: postcard\n", wantErr: domain.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != "" {
				createFile(t, dir, domain.ConfigFileName, tt.content)
			}

			_, err := newLoader(t).Load(dir, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "locales: [en]\nexport:\n  output: from-file.blob\n")
	createFile(t, dir, domain.EnvFileName, `
DATAGEN_OUTPUT=from-dotenv.blob
DATAGEN_LOCALES=de, fr
DATAGEN_NETWORK=false
UNRELATED=ignored
`)
	t.Setenv(config.EnvLocales, "ja")
	t.Setenv(config.EnvComponents, "plurals,decimal")
	t.Setenv(config.EnvDedupe, "0")

	req, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "from-dotenv.blob"), req.Export.Output)
	assert.Equal(t, []string{"ja"}, req.Locales, "process environment wins over .env")
	assert.False(t, req.Source.Network)
	assert.False(t, req.Export.Dedupe)
	assert.Equal(t, domain.NewComponentSet(domain.ComponentPlurals, domain.ComponentDecimal), req.Components)
}

func TestLoader_Load_EnvironmentPathsResolveAgainstCwd(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "cache")
	t.Setenv(config.EnvOutput, "out/env.blob")
	t.Setenv(config.EnvCLDRDir, "cldr")
	t.Setenv(config.EnvCacheDir, abs)

	req, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "out", "env.blob"), req.Export.Output)
	assert.Equal(t, filepath.Join(dir, "cldr"), req.Source.LocalDir)
	assert.Equal(t, abs, req.Source.CacheDir)
}

func TestLoader_Load_InvalidEnvironment(t *testing.T) {
	t.Setenv(config.EnvParallel, "sometimes")

	_, err := newLoader(t).Load(t.TempDir(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidConfigValue.Error())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"en", "de-CH"}, config.SplitList(" en, ,de-CH,"))
	assert.Nil(t, config.SplitList(""))
}
