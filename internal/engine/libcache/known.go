// Package libcache implements the caching layer between callers and the
// haxelib command line tool. It tracks which libraries an SDK has installed
// and remembers the classpath each one resolves to, so the external binary is
// only spawned when a lookup cannot be answered from memory.
package libcache

import (
	"context"
	"sort"
	"sync"

	"github.com/TiVo/hxcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// KnownSet is the lazily-initialized set of library names haxelib reports as
// installed. Population happens at most once: the first membership query
// issues a single list call, and every later query is answered from memory
// until Invalidate re-arms it.
//
// A name absent from a populated set is authoritative evidence the library is
// not installed; callers use that to skip resolution entirely.
type KnownSet struct {
	gateway ports.Gateway
	logger  ports.Logger

	mu        sync.RWMutex
	populated bool
	names     map[string]struct{}
}

// NewKnownSet creates an unpopulated KnownSet backed by the given gateway.
func NewKnownSet(gateway ports.Gateway, logger ports.Logger) *KnownSet {
	return &KnownSet{
		gateway: gateway,
		logger:  logger,
	}
}

// Contains reports whether the named library is installed, populating the set
// on first use. Names are case sensitive.
func (s *KnownSet) Contains(ctx context.Context, name string) bool {
	s.ensure(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.names[name]
	return ok
}

// All returns a fresh, sorted copy of every known library name.
func (s *KnownSet) All(ctx context.Context) []string {
	s.ensure(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Seed marks the set as populated with the given names without touching the
// gateway. Used when a bulk listing already produced the installed set.
func (s *KnownSet) Seed(names []string) {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = set
	s.populated = true
}

// Invalidate discards the set so the next query repopulates from the gateway.
func (s *KnownSet) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = nil
	s.populated = false
}

// ensure populates the set exactly once. If the gateway fails the set stays
// empty and is not re-queried until Invalidate; every lookup then answers
// "unknown", which keeps callers degraded rather than blocked on a broken
// tool install.
func (s *KnownSet) ensure(ctx context.Context) {
	s.mu.RLock()
	populated := s.populated
	s.mu.RUnlock()
	if populated {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.populated {
		return
	}

	names, err := s.gateway.ListInstalled(ctx)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to list installed libraries"))
		names = nil
	}

	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	s.names = set
	s.populated = true
}
