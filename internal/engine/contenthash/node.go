package contenthash

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcache/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/xcache/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/xcache/internal/core/ports"
)

// NodeID is the unique identifier for the graph hasher Graft node.
const NodeID graft.ID = "engine.contenthash"

func init() {
	graft.Register(graft.Node[ports.GraphHasherFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherFactoryNodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (ports.GraphHasherFactory, error) {
			hashers, err := graft.Dep[ports.ContentHasherFactory](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(hashers, telemetry), nil
		},
	})
}
