package ports

import "go.trai.ch/podlink/internal/core/domain"

// Hasher defines the interface for fingerprinting an integration.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeReportHash hashes the report together with the contents of the given files.
	// Files that do not exist contribute a fixed marker instead of failing.
	ComputeReportHash(report *domain.IntegrationReport, files []string) (string, error)
}
