// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/TiVo/hxcache/internal/core/domain"
)

// Gateway abstracts invocation of the external haxelib binary. Every call
// spawns a process and blocks until it exits; all output is returned as one
// logical record per line.
//
//go:generate go run go.uber.org/mock/mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks
type Gateway interface {
	// ListInstalled returns the names of all installed libraries, one per line.
	ListInstalled(ctx context.Context) ([]string, error)

	// ListInstalledWithPaths returns one "name:version:path" record per
	// installed library. Only valid on installations whose Sdk reports
	// ListPathSupported.
	ListInstalledWithPaths(ctx context.Context) ([]string, error)

	// LibraryPath returns the classpath entries haxelib reports for the named
	// library, one path per line.
	LibraryPath(ctx context.Context, name string) ([]string, error)
}

// GatewayFactory constructs a Gateway bound to one SDK installation.
type GatewayFactory func(sdk domain.Sdk) Gateway
