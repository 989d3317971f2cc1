package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcache/internal/core/ports"
)

const (
	WalkerNodeID        graft.ID = "adapter.fs.walker"
	ResolverNodeID      graft.ID = "adapter.fs.resolver"
	HasherFactoryNodeID graft.ID = "adapter.fs.content_hasher_factory"
)

func init() {
	// Walker Node (Concrete implementation used by ContentHasher)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Resolver Node
	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InputResolver, error) {
			return NewResolver(), nil
		},
	})

	// Content Hasher Factory Node
	graft.Register(graft.Node[ports.ContentHasherFactory]{
		ID:        HasherFactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.ContentHasherFactory, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewContentHasherFactory(walker), nil
		},
	})
}
