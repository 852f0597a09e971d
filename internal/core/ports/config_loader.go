package ports

import "go.trai.ch/histo/internal/core/domain"

// ConfigLoader defines the interface for loading the harness configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves defaults, the file at path, environment variables and overrides, in that
	// order, and validates the result. A missing file is not an error.
	Load(path string, overrides domain.Overrides) (*domain.Config, error)
}
