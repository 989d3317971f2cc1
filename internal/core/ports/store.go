package ports

import "go.trai.ch/xcache/internal/core/domain"

// FingerprintStore persists the last computed fingerprint of each unit.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Load returns the records stored at path.
	// A missing store yields an empty map and no error.
	Load(path string) (map[string]domain.FingerprintRecord, error)

	// Save replaces the records stored at path.
	Save(path string, records map[string]domain.FingerprintRecord) error

	// Remove deletes the store at path. Removing a missing store is not an error.
	Remove(path string) error
}
