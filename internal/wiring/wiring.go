// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/TiVo/hxcache/internal/adapters/config"
	_ "github.com/TiVo/hxcache/internal/adapters/haxelib"
	_ "github.com/TiVo/hxcache/internal/adapters/logger"
	_ "github.com/TiVo/hxcache/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/TiVo/hxcache/internal/app"
	_ "github.com/TiVo/hxcache/internal/engine/libcache"
)
