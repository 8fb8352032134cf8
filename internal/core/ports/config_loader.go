package ports

import "go.trai.ch/dynctl/internal/core/domain"

// ConfigLoader defines the interface for loading the dynctl manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at path.
	Load(path string) (*domain.Manifest, error)
}
