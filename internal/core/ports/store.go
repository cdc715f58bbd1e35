package ports

import "go.trai.ch/podlink/internal/core/domain"

// IntegrationStateStore defines the interface for storing the last known state of each
// aggregate target.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type IntegrationStateStore interface {
	// Get retrieves the state recorded for a label in the state directory dir.
	// Returns nil, nil if not found.
	Get(dir, label string) (*domain.IntegrationState, error)

	// Put stores the state in the state directory dir.
	Put(dir string, state domain.IntegrationState) error
}
