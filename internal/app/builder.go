// Package app implements the application layer for hxcache.
package app

import (
	"github.com/TiVo/hxcache/internal/adapters/config"
	"github.com/TiVo/hxcache/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	configLoader ports.ConfigLoader
}

// SetConfigFile points the file-backed config loader at another filename.
// Loaders that are not file-backed (tests inject mocks) are left untouched.
func (c *Components) SetConfigFile(name string) {
	if loader, ok := c.configLoader.(*config.Loader); ok {
		loader.Filename = name
	}
}
