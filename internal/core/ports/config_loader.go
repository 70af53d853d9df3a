package ports

import "go.trai.ch/datagen/internal/core/domain"

// ConfigLoader defines the interface for loading the export configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load builds an export request from defaults, the configuration file at path (optional
	// when empty or missing) and environment overrides. Command line flags are applied by the caller.
	Load(cwd, path string) (domain.ExportRequest, error)
}
