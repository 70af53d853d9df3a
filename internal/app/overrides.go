package app

import (
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Overrides are the command line flags layered over the loaded configuration.
// Zero values leave the configuration untouched.
type Overrides struct {
	Output      string
	Format      string
	Locales     []string
	Components  []string
	CLDRVersion string
	CLDRDir     string
	CacheDir    string

	NoNetwork      bool
	NoCompute      bool
	NoExperimental bool
	NoParallel     bool
	NoDedupe       bool
}

// Apply writes the set overrides into req. Relative paths resolve against cwd.
func (o Overrides) Apply(req *domain.ExportRequest, cwd string) error {
	if len(o.Components) > 0 {
		set, err := domain.ParseComponentSet(o.Components)
		if err != nil {
			return zerr.With(err, "flag", "components")
		}
		req.Components = set
	}
	if len(o.Locales) > 0 {
		req.Locales = append([]string{}, o.Locales...)
	}
	if o.Format != "" {
		format, err := domain.ParseFormat(o.Format)
		if err != nil {
			return err
		}
		req.Export.Format = format
	}

	if o.Output != "" {
		req.Export.Output = absPath(cwd, o.Output)
	}
	if o.CLDRVersion != "" {
		req.Source.CLDRVersion = o.CLDRVersion
	}
	if o.CLDRDir != "" {
		req.Source.LocalDir = absPath(cwd, o.CLDRDir)
	}
	if o.CacheDir != "" {
		req.Source.CacheDir = absPath(cwd, o.CacheDir)
	}

	if o.NoNetwork {
		req.Source.Network = false
	}
	if o.NoCompute {
		req.Source.ComputeFallback = false
	}
	if o.NoExperimental {
		req.Source.Experimental = false
	}
	if o.NoParallel {
		req.Export.Parallel = false
	}
	if o.NoDedupe {
		req.Export.Dedupe = false
	}
	return nil
}
