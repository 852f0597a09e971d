// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/histo/internal/adapters/cas"
	_ "go.trai.ch/histo/internal/adapters/config"
	_ "go.trai.ch/histo/internal/adapters/logger"
	_ "go.trai.ch/histo/internal/adapters/rng"
	_ "go.trai.ch/histo/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/histo/internal/app"
	_ "go.trai.ch/histo/internal/engine/harness"
)
