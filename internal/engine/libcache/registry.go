package libcache

import (
	"context"
	"sync"

	"github.com/TiVo/hxcache/internal/core/domain"
	"github.com/TiVo/hxcache/internal/core/ports"
	"github.com/cespare/xxhash/v2"
)

// Registry hands out one Manager per distinct SDK installation. Different
// installations (or different versions sharing a machine) may report
// different libraries and paths, so their caches must never be mixed.
// Managers are memoized by a hash of the SDK identity and live until the
// registry is discarded.
type Registry struct {
	newGateway ports.GatewayFactory
	logger     ports.Logger
	tracer     ports.Tracer

	mu       sync.Mutex
	managers map[uint64]*Manager
}

// NewRegistry creates an empty Registry. Gateways are constructed on demand,
// one per SDK, through the given factory.
func NewRegistry(factory ports.GatewayFactory, logger ports.Logger, tracer ports.Tracer) *Registry {
	return &Registry{
		newGateway: factory,
		logger:     logger,
		tracer:     tracer,
		managers:   make(map[uint64]*Manager),
	}
}

// For returns the Manager bound to the given SDK, creating it on first use.
// Equal SDK identities always share one Manager instance.
func (r *Registry) For(ctx context.Context, sdk domain.Sdk) *Manager {
	key := xxhash.Sum64String(sdk.Identity())

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.managers[key]; ok {
		return m
	}

	m := NewManager(ctx, sdk, r.newGateway(sdk), r.logger, r.tracer)
	r.managers[key] = m
	return m
}

// InvalidateAll clears every managed cache.
func (r *Registry) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.managers {
		m.Invalidate()
	}
}

// Len returns the number of distinct SDKs with live caches.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.managers)
}
