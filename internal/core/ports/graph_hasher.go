package ports

import (
	"context"

	"go.trai.ch/xcache/internal/core/domain"
)

// GraphContentHashing computes the fingerprint of every cacheable unit in a graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_hasher.go -destination=mocks/mock_graph_hasher.go -package=mocks
type GraphContentHashing interface {
	// ContentHash returns one digest per framework unit, keyed by unit name.
	// It fails as a whole if any unit cannot be hashed.
	ContentHash(ctx context.Context, graph *domain.Graph) (domain.Fingerprints, error)
}

// GraphHasherFactory builds a GraphContentHashing for the given settings.
type GraphHasherFactory interface {
	NewGraphHasher(settings domain.CacheSettings) (GraphContentHashing, error)
}
