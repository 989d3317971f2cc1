package contenthash

import (
	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/xcache/internal/core/ports"
)

// CoreDataModelsContentHasher hashes the Core Data model files of a unit.
type CoreDataModelsContentHasher struct {
	hasher ports.ContentHasher
}

// NewCoreDataModelsContentHasher creates a CoreDataModelsContentHasher.
func NewCoreDataModelsContentHasher(hasher ports.ContentHasher) *CoreDataModelsContentHasher {
	return &CoreDataModelsContentHasher{hasher: hasher}
}

// Hash digests every model file and folds the digests in the given order.
// Paths are not sorted.
func (h *CoreDataModelsContentHasher) Hash(paths []string) (domain.Digest, error) {
	digests := make([]string, 0, len(paths))
	for _, path := range paths {
		d, err := h.hasher.HashFile(path)
		if err != nil {
			return "", err
		}
		digests = append(digests, d.String())
	}
	return h.hasher.HashStrings(digests), nil
}
