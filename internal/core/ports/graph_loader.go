package ports

import "go.trai.ch/xcache/internal/core/domain"

// GraphLoader loads the project manifest into a fully resolved unit graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_loader.go -destination=mocks/mock_graph_loader.go -package=mocks
type GraphLoader interface {
	// Load discovers the manifest in cwd or its parents and returns the project.
	// Every path in the returned graph is absolute and glob-expanded.
	Load(cwd string) (*domain.Project, error)

	// LoadFile reads the manifest at path. The format follows the extension.
	LoadFile(path string) (*domain.Project, error)
}
