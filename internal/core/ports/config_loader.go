// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/podlink/internal/core/domain"

// ConfigLoader defines the interface for loading the integration manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at path and returns its aggregate targets, fully populated.
	Load(path string) (*domain.Workspace, error)
}
