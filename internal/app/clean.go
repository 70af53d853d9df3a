package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.trai.ch/datagen/internal/adapters/cldr"
	"go.trai.ch/zerr"
)

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	// CacheDir overrides the configured CLDR cache directory.
	CacheDir string
	// Blob also removes the configured output blob.
	Blob bool
}

// Clean removes the CLDR document cache and, optionally, the output blob.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}

	req, err := a.configLoader.Load(cwd, options.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if err := (Overrides{CacheDir: options.CacheDir}).Apply(&req, cwd); err != nil {
		return err
	}

	var errs error

	a.logger.Info(fmt.Sprintf("removing CLDR cache %s...", req.Source.CacheDir))
	if err := cldr.Clean(req.Source.CacheDir); err != nil {
		errs = errors.Join(errs, err)
	} else {
		a.logger.Info("removed CLDR cache")
	}

	if options.Blob {
		a.logger.Info(fmt.Sprintf("removing blob %s...", req.Export.Output))
		switch err := os.Remove(req.Export.Output); {
		case err == nil:
			a.logger.Info("removed blob")
		case errors.Is(err, fs.ErrNotExist):
			a.logger.Debug("no blob to remove")
		default:
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove blob"), "path", req.Export.Output))
		}
	}

	return errs
}
