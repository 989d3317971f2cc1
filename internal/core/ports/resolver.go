package ports

// InputResolver expands declared path patterns into concrete file paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs resolves the given patterns relative to root.
	// Results keep declaration order; matches of one pattern are sorted and duplicates dropped.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
