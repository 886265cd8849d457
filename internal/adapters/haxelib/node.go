package haxelib

import (
	"context"

	"github.com/TiVo/hxcache/internal/adapters/logger"
	"github.com/TiVo/hxcache/internal/core/domain"
	"github.com/TiVo/hxcache/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the haxelib gateway factory Graft node.
const NodeID graft.ID = "adapter.haxelib"

func init() {
	graft.Register(graft.Node[ports.GatewayFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.GatewayFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(sdk domain.Sdk) ports.Gateway {
				return NewGateway(sdk, log)
			}, nil
		},
	})
}
