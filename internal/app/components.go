package app

import "go.trai.ch/datagen/internal/core/ports"

// Components holds the wired application and the adapters main needs directly.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger, loader ports.ConfigLoader) *Components {
	return &Components{
		App:          app,
		Logger:       logger,
		ConfigLoader: loader,
	}
}

type configurableLogger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// ConfigureLogging raises the log level to debug and switches to JSON output when requested.
// Loggers without these settings are left unchanged.
func (a *App) ConfigureLogging(verbose, json bool) {
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetVerbose(verbose)
		l.SetJSON(json)
	}
}
