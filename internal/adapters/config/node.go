package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcache/internal/adapters/fs"
	"go.trai.ch/xcache/internal/adapters/logger"
	"go.trai.ch/xcache/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.GraphLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ResolverNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.GraphLoader, error) {
			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLoader(resolver, log), nil
		},
	})
}
