package ports

import "github.com/TiVo/hxcache/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the SDK descriptor to resolve against.
	Load(cwd string) (*domain.ToolConfig, error)
}
