// Package config provides the configuration loader for datagen.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the datagen.yaml schema version understood by the loader.
const SupportedVersion = "1"

// Environment variables overriding the configuration file.
const (
	EnvOutput       = "DATAGEN_OUTPUT"
	EnvLocales      = "DATAGEN_LOCALES"
	EnvComponents   = "DATAGEN_COMPONENTS"
	EnvCLDRVersion  = "DATAGEN_CLDR_VERSION"
	EnvBaseURL      = "DATAGEN_CLDR_BASE_URL"
	EnvCLDRDir      = "DATAGEN_CLDR_DIR"
	EnvCacheDir     = "DATAGEN_CACHE_DIR"
	EnvNetwork      = "DATAGEN_NETWORK"
	EnvCompute      = "DATAGEN_COMPUTE"
	EnvExperimental = "DATAGEN_EXPERIMENTAL"
	EnvParallel     = "DATAGEN_PARALLEL"
	EnvDedupe       = "DATAGEN_DEDUPE"
)

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Defaults returns the request used when nothing is configured: every component,
// the default locales, network and computation fallback and experimental markers enabled,
// and a parallel, deduplicated blob export.
func Defaults(cwd string) domain.ExportRequest {
	return domain.ExportRequest{
		Components: domain.FullComponentSet(),
		Locales:    append([]string{}, domain.DefaultLocales...),
		Source: domain.SourceConfig{
			CLDRVersion:     domain.DefaultCLDRVersion,
			BaseURL:         domain.DefaultBaseURL,
			CacheDir:        filepath.Join(cwd, domain.DefaultCLDRCachePath()),
			Network:         true,
			ComputeFallback: true,
			Experimental:    true,
		},
		Export: domain.ExportConfig{
			Format:   domain.FormatBlob,
			Output:   filepath.Join(cwd, domain.DefaultOutput),
			Parallel: true,
			Dedupe:   true,
		},
	}
}

// Load builds the export request: defaults, then the configuration file, then the
// .env file in cwd, then the process environment.
// An empty path looks for datagen.yaml in cwd, which may be absent.
func (l *Loader) Load(cwd, path string) (domain.ExportRequest, error) {
	req := Defaults(cwd)

	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	datafile, err := readDatafile(path)
	switch {
	case err == nil:
		if err := applyDatafile(&req, datafile, filepath.Dir(path)); err != nil {
			return domain.ExportRequest{}, zerr.With(err, "config", path)
		}
		l.Logger.Debug(fmt.Sprintf("loaded configuration from %s", path))
	case !explicit && errors.Is(err, fs.ErrNotExist):
		l.Logger.Debug("no configuration file, using defaults")
	default:
		return domain.ExportRequest{}, zerr.With(err, "config", path)
	}

	env, err := l.environment(cwd)
	if err != nil {
		return domain.ExportRequest{}, err
	}
	if err := applyEnvironment(&req, env, cwd); err != nil {
		return domain.ExportRequest{}, err
	}

	return req, nil
}

func readDatafile(path string) (*Datafile, error) {
	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var datafile Datafile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&datafile); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if datafile.Version != "" && datafile.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfigValue, "unsupported configuration version"),
			"version", datafile.Version)
	}
	return &datafile, nil
}

// applyDatafile overlays the file's values on req. Relative paths resolve against dir.
func applyDatafile(req *domain.ExportRequest, f *Datafile, dir string) error {
	if len(f.Components) > 0 {
		set, err := domain.ParseComponentSet(f.Components)
		if err != nil {
			return err
		}
		req.Components = set
	}
	if len(f.Locales) > 0 {
		req.Locales = append([]string{}, f.Locales...)
	}

	if s := f.Source; s != nil {
		setString(&req.Source.CLDRVersion, s.CLDRVersion)
		setString(&req.Source.BaseURL, s.BaseURL)
		setString(&req.Source.LocalDir, resolvePath(dir, s.LocalDir))
		setString(&req.Source.CacheDir, resolvePath(dir, s.CacheDir))
		setBool(&req.Source.Network, s.Network)
		setBool(&req.Source.ComputeFallback, s.Compute)
		setBool(&req.Source.Experimental, s.Experimental)
	}

	if e := f.Export; e != nil {
		if e.Format != "" {
			format, err := domain.ParseFormat(e.Format)
			if err != nil {
				return err
			}
			req.Export.Format = format
		}
		setString(&req.Export.Output, resolvePath(dir, e.Output))
		setBool(&req.Export.Parallel, e.Parallel)
		setBool(&req.Export.Dedupe, e.Dedupe)
	}
	return nil
}

// environment merges the .env file in cwd with the process environment, which wins.
func (l *Loader) environment(cwd string) (map[string]string, error) {
	env := map[string]string{}

	envFile := filepath.Join(cwd, domain.EnvFileName)
	if _, err := os.Stat(envFile); err == nil {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", envFile)
		}
		for k, v := range values {
			if strings.HasPrefix(k, "DATAGEN_") {
				env[k] = v
			}
		}
		l.Logger.Debug(fmt.Sprintf("loaded environment overrides from %s", envFile))
	}

	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, "DATAGEN_") {
			env[k] = v
		}
	}
	return env, nil
}

// applyEnvironment overrides req with the DATAGEN_* values. Relative paths resolve against cwd.
func applyEnvironment(req *domain.ExportRequest, env map[string]string, cwd string) error {
	if v, ok := env[EnvComponents]; ok && v != "" {
		set, err := domain.ParseComponentSet(SplitList(v))
		if err != nil {
			return zerr.With(err, "env", EnvComponents)
		}
		req.Components = set
	}
	if v, ok := env[EnvLocales]; ok && v != "" {
		req.Locales = SplitList(v)
	}

	setString(&req.Export.Output, resolvePath(cwd, env[EnvOutput]))
	setString(&req.Source.CLDRVersion, env[EnvCLDRVersion])
	setString(&req.Source.BaseURL, env[EnvBaseURL])
	setString(&req.Source.LocalDir, resolvePath(cwd, env[EnvCLDRDir]))
	setString(&req.Source.CacheDir, resolvePath(cwd, env[EnvCacheDir]))

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvNetwork, &req.Source.Network},
		{EnvCompute, &req.Source.ComputeFallback},
		{EnvExperimental, &req.Source.Experimental},
		{EnvParallel, &req.Export.Parallel},
		{EnvDedupe, &req.Export.Dedupe},
	}
	for _, b := range bools {
		v, ok := env[b.key]
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			invalid := zerr.With(zerr.Wrap(domain.ErrInvalidConfigValue, "expected a boolean"), "env", b.key)
			return zerr.With(invalid, "value", v)
		}
		*b.dst = parsed
	}
	return nil
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
