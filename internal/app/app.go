// Package app implements the application layer for hxcache.
package app

import (
	"context"
	"strconv"

	"go.trai.ch/zerr"

	"github.com/TiVo/hxcache/internal/adapters/telemetry"
	"github.com/TiVo/hxcache/internal/core/domain"
	"github.com/TiVo/hxcache/internal/core/ports"
	"github.com/TiVo/hxcache/internal/engine/libcache"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     *libcache.Registry
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, registry *libcache.Registry, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		registry:     registry,
		logger:       log,
		tracer:       telemetry.NewNoOpTracer(),
	}
}

// WithTracer overrides the tracer used for top-level operation spans.
// This is how the CLI plugs in progress rendering.
func (a *App) WithTracer(tracer ports.Tracer) *App {
	a.tracer = tracer
	return a
}

// Resolve resolves the classpaths of the named libraries against the
// configured SDK and returns the unioned paths in deterministic order.
// Libraries that are unknown or fail to resolve contribute no paths.
func (a *App) Resolve(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoLibrariesSpecified
	}

	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	_, span := a.tracer.Start(ctx, "resolve "+strconv.Itoa(len(names))+" libraries")
	defer span.End()

	manager := a.registry.For(ctx, cfg.Sdk)
	classpath := manager.ResolveMany(ctx, names)
	span.Stamp("resolved " + strconv.Itoa(classpath.Size()) + " classpath entries")

	return classpath.Paths(), nil
}

// List returns the sorted names of every library installed for the
// configured SDK.
func (a *App) List(ctx context.Context) ([]string, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	_, span := a.tracer.Start(ctx, "list installed libraries")
	defer span.End()

	return a.registry.For(ctx, cfg.Sdk).KnownLibraries(ctx), nil
}

// Invalidate discards the cached state for the configured SDK. The next
// resolution starts from a fresh haxelib listing.
func (a *App) Invalidate(ctx context.Context) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	a.registry.For(ctx, cfg.Sdk).Invalidate()
	return nil
}
