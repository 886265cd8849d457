package libcache

import (
	"context"

	"github.com/TiVo/hxcache/internal/adapters/haxelib"   //nolint:depguard // Wired in engine wiring
	"github.com/TiVo/hxcache/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/TiVo/hxcache/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/TiVo/hxcache/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the library cache registry Graft node.
const NodeID graft.ID = "engine.libcache"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			haxelib.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Registry, error) {
			factory, err := graft.Dep[ports.GatewayFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewRegistry(factory, log, tracer), nil
		},
	})
}
