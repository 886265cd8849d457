package libcache

import (
	"sync"

	"github.com/TiVo/hxcache/internal/core/domain"
	"github.com/TiVo/hxcache/internal/core/ports"
)

// EntryCache is a concurrency-safe map from library name to its cached
// resolution result. It knows nothing about haxelib; it only stores what
// callers hand it.
//
// At most one entry exists per name. Overwriting an existing entry signals
// that two callers raced to resolve the same miss; that is logged as an
// anomaly but the newest value always wins.
type EntryCache struct {
	logger ports.Logger

	mu      sync.RWMutex
	entries map[string]*domain.LibraryEntry
}

// NewEntryCache creates an empty EntryCache.
func NewEntryCache(logger ports.Logger) *EntryCache {
	return &EntryCache{
		logger:  logger,
		entries: make(map[string]*domain.LibraryEntry),
	}
}

// Get returns the cached entry for the named library, if one exists.
func (c *EntryCache) Get(name string) (*domain.LibraryEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[name]
	return entry, ok
}

// Put stores the entry, replacing and logging any previous value for the
// same name.
func (c *EntryCache) Put(entry *domain.LibraryEntry) {
	c.mu.Lock()
	_, existed := c.entries[entry.Name()]
	c.entries[entry.Name()] = entry
	c.mu.Unlock()

	if existed {
		c.logger.Warn("duplicating cached data for library " + entry.Name())
	}
}

// Clear discards every cached entry.
func (c *EntryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*domain.LibraryEntry)
}

// Len returns the number of cached entries.
func (c *EntryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
