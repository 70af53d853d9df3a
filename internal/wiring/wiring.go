// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/datagen/internal/adapters/blob"
	_ "go.trai.ch/datagen/internal/adapters/cldr"
	_ "go.trai.ch/datagen/internal/adapters/config"
	_ "go.trai.ch/datagen/internal/adapters/logger"
	_ "go.trai.ch/datagen/internal/adapters/provider"
	// Register app nodes.
	_ "go.trai.ch/datagen/internal/app"
)
