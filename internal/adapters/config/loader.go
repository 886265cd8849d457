// Package config provides the configuration loader for hxcache.
package config

import (
	"os"
	"path/filepath"

	"github.com/TiVo/hxcache/internal/core/domain"
	"github.com/TiVo/hxcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "hxcache.yaml"

// listPathEnvVar force-enables the bulk list-path capability. Enhanced
// haxelib builds are not detectable from the version string alone, so the
// environment acts as the capability signal.
const listPathEnvVar = "HAXELIB_LIST_PATH_SUPPORTED"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a Loader reading DefaultFilename.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		logger:   logger,
	}
}

// Load reads the configuration from the given working directory.
func (l *Loader) Load(cwd string) (*domain.ToolConfig, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// hxcacheFile represents the structure of the hxcache.yaml configuration file.
type hxcacheFile struct {
	Sdk sdkDTO `yaml:"sdk"`
}

// sdkDTO represents the SDK descriptor in the configuration.
type sdkDTO struct {
	Name              string `yaml:"name"`
	Home              string `yaml:"home"`
	Version           string `yaml:"version"`
	Haxelib           string `yaml:"haxelib"`
	ListPathSupported bool   `yaml:"listPathSupported"`
}

// Load reads a configuration file from the given path and returns the tool
// configuration. The HAXELIB_LIST_PATH_SUPPORTED environment variable
// overrides the capability flag to true regardless of the file contents.
func Load(path string) (*domain.ToolConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file hxcacheFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	listPath := file.Sdk.ListPathSupported
	if os.Getenv(listPathEnvVar) != "" {
		listPath = true
	}

	return &domain.ToolConfig{
		Sdk: domain.Sdk{
			Name:              domain.NewInternedString(file.Sdk.Name),
			HomePath:          domain.NewInternedString(file.Sdk.Home),
			Version:           domain.NewInternedString(file.Sdk.Version),
			HaxelibBin:        domain.NewInternedString(file.Sdk.Haxelib),
			ListPathSupported: listPath,
		},
	}, nil
}
