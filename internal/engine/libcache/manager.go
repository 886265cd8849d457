package libcache

import (
	"context"
	"runtime"
	"strconv"

	"github.com/TiVo/hxcache/internal/core/domain"
	"github.com/TiVo/hxcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Manager is the public entry point of the cache: it composes the known-set
// and the entry cache for one SDK and decides when the gateway actually has
// to be invoked.
//
// Resolution never surfaces an error to the caller. A broken or missing
// haxelib degrades every lookup to an empty classpath plus a logged error, so
// the surrounding editor session keeps working. Strictness was traded for
// availability on purpose; see the error policy notes in DESIGN.md.
type Manager struct {
	sdk     domain.Sdk
	gateway ports.Gateway
	logger  ports.Logger
	tracer  ports.Tracer

	known  *KnownSet
	cache  *EntryCache
	flight singleflight.Group
}

// NewManager creates the cache for one SDK. When the SDK's haxelib supports
// the bulk "list-path" command, both the known-set and the entry cache are
// populated eagerly from a single call; otherwise they fill lazily on first
// use. A failed eager population falls back to the lazy path.
func NewManager(
	ctx context.Context,
	sdk domain.Sdk,
	gateway ports.Gateway,
	logger ports.Logger,
	tracer ports.Tracer,
) *Manager {
	m := &Manager{
		sdk:     sdk,
		gateway: gateway,
		logger:  logger,
		tracer:  tracer,
		known:   NewKnownSet(gateway, logger),
		cache:   NewEntryCache(logger),
	}

	if sdk.ListPathSupported {
		m.warm(ctx)
	}
	return m
}

// Sdk returns the SDK this cache is bound to.
func (m *Manager) Sdk() domain.Sdk {
	return m.sdk
}

// ResolveOne returns the classpath for a single library. Unknown libraries
// resolve to an empty classpath without invoking the gateway. Cache misses
// block for one haxelib invocation; concurrent misses for the same name are
// collapsed into a single invocation.
func (m *Manager) ResolveOne(ctx context.Context, name string) domain.Classpath {
	_, span := m.tracer.Start(ctx, "resolve "+name)
	defer span.End()

	if !m.known.Contains(ctx, name) {
		span.Stamp("unknown library: " + name)
		return domain.Classpath{}
	}

	if entry, ok := m.cache.Get(name); ok {
		span.Stamp("cache hit")
		return entry.Classpath()
	}
	span.Stamp("cache miss")

	v, err, shared := m.flight.Do(name, func() (any, error) {
		lines, err := m.gateway.LibraryPath(ctx, name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "classpath lookup failed"), "library", name)
		}

		paths := sanitizePaths(lines)
		classpath := domain.NewClasspath(len(paths))
		for _, path := range paths {
			classpath.Add(domain.NewClasspathEntry(name, path))
		}
		m.cache.Put(domain.NewLibraryEntry(name, classpath))
		return classpath, nil
	})
	if err != nil {
		span.RecordError(err)
		m.logger.Error(err)
		return domain.Classpath{}
	}
	if shared {
		span.Stamp("joined in-flight lookup")
	}

	classpath, ok := v.(domain.Classpath)
	if !ok {
		return domain.Classpath{}
	}
	span.Stamp("haxelib finished with " + strconv.Itoa(classpath.Size()) + " entries")
	return classpath.Clone()
}

// ResolveMany resolves every named library and unions the results into one
// classpath. Paths are de-duplicated across libraries while the first-seen
// order of the input is preserved, so the unioned classpath is deterministic.
// A nil or empty input returns an empty classpath without any gateway call.
func (m *Manager) ResolveMany(ctx context.Context, names []string) domain.Classpath {
	if len(names) == 0 {
		return domain.Classpath{}
	}

	// Fan out across libraries; collect by position so the union below walks
	// the caller's order regardless of which lookup finished first.
	results := make([]domain.Classpath, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			results[i] = m.ResolveOne(gctx, name)
			return nil
		})
	}
	_ = g.Wait() // ResolveOne never returns an error

	union := domain.NewClasspath(len(names))
	for _, classpath := range results {
		union.AddAll(classpath)
	}
	return union
}

// IsKnown reports whether the library is installed for this SDK.
func (m *Manager) IsKnown(ctx context.Context, name string) bool {
	return m.known.Contains(ctx, name)
}

// KnownLibraries returns a fresh, sorted list of every installed library.
func (m *Manager) KnownLibraries(ctx context.Context) []string {
	return m.known.All(ctx)
}

// Invalidate discards both caches. The next lookup repopulates lazily, which
// is the escape hatch after libraries are installed or removed mid-session.
func (m *Manager) Invalidate() {
	m.cache.Clear()
	m.known.Invalidate()
}

func (m *Manager) warm(ctx context.Context) {
	lines, err := m.gateway.ListInstalledWithPaths(ctx)
	if err != nil {
		m.logger.Error(zerr.Wrap(err, "bulk library listing failed, falling back to lazy population"))
		return
	}

	records := parseBulkListing(lines, m.logger)
	names := make([]string, 0, len(records))
	for _, record := range records {
		classpath := domain.NewClasspath(1)
		classpath.Add(domain.NewClasspathEntry(record.name, record.path))
		m.cache.Put(domain.NewLibraryEntry(record.name, classpath))
		names = append(names, record.name)
	}
	m.known.Seed(names)
}
