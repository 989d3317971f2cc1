// Package domain contains the core models of the build unit graph and its fingerprints.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the dependency graph of build units supplied to the content hasher.
type Graph struct {
	root           string
	units          map[InternedString]*BuildUnit
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		units: make(map[InternedString]*BuildUnit),
	}
}

// SetRoot records the directory the graph was loaded from.
func (g *Graph) SetRoot(root string) {
	g.root = root
}

// Root returns the directory the graph was loaded from.
func (g *Graph) Root() string {
	return g.root
}

// AddUnit adds a build unit to the graph.
// It returns an error if the name is empty or already taken.
func (g *Graph) AddUnit(u *BuildUnit) error {
	if u.Name.String() == "" {
		return ErrInvalidUnitName
	}
	if _, exists := g.units[u.Name]; exists {
		return zerr.With(ErrUnitAlreadyExists, "unit_name", u.Name.String())
	}
	g.units[u.Name] = u
	g.executionOrder = nil
	return nil
}

// GetUnit returns the unit with the given name.
func (g *Graph) GetUnit(name InternedString) (*BuildUnit, bool) {
	u, ok := g.units[name]
	return u, ok
}

// UnitCount returns the number of units in the graph.
func (g *Graph) UnitCount() int {
	return len(g.units)
}

// Units yields every unit ordered by name.
func (g *Graph) Units() iter.Seq[*BuildUnit] {
	names := g.sortedNames()
	return func(yield func(*BuildUnit) bool) {
		for _, name := range names {
			if !yield(g.units[name]) {
				return
			}
		}
	}
}

// CacheableUnits returns the framework units ordered by name.
func (g *Graph) CacheableUnits() []*BuildUnit {
	var res []*BuildUnit
	for u := range g.Units() {
		if u.IsCacheable() {
			res = append(res, u)
		}
	}
	return res
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the order used by Walk.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.units))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		unit, exists := g.units[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u.String())
		}

		for _, dep := range unit.Dependencies {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	// Sorted roots keep the order stable for disconnected components.
	for _, name := range g.sortedNames() {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				g.executionOrder = nil
				return err
			}
		}
	}

	return nil
}

func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	startIdx := slices.Index(path, dep)
	parts := make([]string, 0, len(path)-startIdx+1)
	for _, node := range path[startIdx:] {
		parts = append(parts, node.String())
	}
	parts = append(parts, dep.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(parts, " -> "))
}

// Walk yields units in dependency order, dependencies first.
// It assumes Validate has been called and returned nil.
func (g *Graph) Walk() iter.Seq[*BuildUnit] {
	return func(yield func(*BuildUnit) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.units[name]) {
				return
			}
		}
	}
}

func (g *Graph) sortedNames() []InternedString {
	names := make([]InternedString, 0, len(g.units))
	for name := range g.units {
		names = append(names, name)
	}
	slices.SortFunc(names, InternedString.Compare)
	return names
}
