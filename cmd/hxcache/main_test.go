package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()

	// Stub haxelib binary
	haxelibPath := filepath.Join(tmpDir, "haxelib")
	script := "#!/bin/sh\necho 'lime: [8.0.0]'\n"
	if err := os.WriteFile(haxelibPath, []byte(script), 0o700); err != nil { //nolint:gosec // test stub must be executable
		t.Fatalf("failed to write haxelib stub: %v", err)
	}

	configContent := `sdk:
  name: haxe-4.3
  home: ` + tmpDir + `
  version: 4.3.6
  haxelib: ` + haxelibPath + `
`
	if err := os.WriteFile(filepath.Join(tmpDir, "hxcache.yaml"), []byte(configContent), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// Change to tmpDir for relative path resolution
	originalWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"hxcache", "list"}

	exitCode := run()
	assert.Equal(t, 0, exitCode)
}

func TestRun_MissingConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()

	originalWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"hxcache", "list"}

	exitCode := run()
	assert.Equal(t, 1, exitCode)
}
