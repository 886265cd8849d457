package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TiVo/hxcache/internal/adapters/config"
	"github.com/TiVo/hxcache/internal/adapters/logger"
	"github.com/TiVo/hxcache/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return dir
}

func TestLoad_FullConfig(t *testing.T) {
	dir := writeConfig(t, `
sdk:
  name: haxe-4.3
  home: /opt/haxe
  version: 4.3.4
  haxelib: /opt/haxe/haxelib
  listPathSupported: true
`)

	loader := config.NewLoader(logger.New())
	cfg, err := loader.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.Sdk.HomePath.String(); got != "/opt/haxe" {
		t.Errorf("HomePath = %q, want %q", got, "/opt/haxe")
	}
	if got := cfg.Sdk.Binary(); got != "/opt/haxe/haxelib" {
		t.Errorf("Binary() = %q, want %q", got, "/opt/haxe/haxelib")
	}
	if !cfg.Sdk.ListPathSupported {
		t.Error("expected ListPathSupported to be true")
	}
}

func TestLoad_MinimalConfig(t *testing.T) {
	dir := writeConfig(t, `
sdk:
  version: 4.2.0
`)

	loader := config.NewLoader(logger.New())
	cfg, err := loader.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Sdk.ListPathSupported {
		t.Error("expected ListPathSupported to default to false")
	}
	if got := cfg.Sdk.Binary(); got != "haxelib" {
		t.Errorf("Binary() = %q, want PATH fallback %q", got, "haxelib")
	}
}

func TestLoad_EnvOverridesCapability(t *testing.T) {
	t.Setenv("HAXELIB_LIST_PATH_SUPPORTED", "1")

	dir := writeConfig(t, `
sdk:
  version: 4.3.4
  listPathSupported: false
`)

	loader := config.NewLoader(logger.New())
	cfg, err := loader.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Sdk.ListPathSupported {
		t.Error("expected env var to force ListPathSupported")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	loader := config.NewLoader(logger.New())
	_, err := loader.Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), domain.ErrConfigReadFailed.Error()) {
		t.Errorf("error = %v, want error containing %v", err, domain.ErrConfigReadFailed)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "sdk: [not a mapping")

	loader := config.NewLoader(logger.New())
	_, err := loader.Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), domain.ErrConfigParseFailed.Error()) {
		t.Errorf("error = %v, want error containing %v", err, domain.ErrConfigParseFailed)
	}
}
