// Package haxelib provides the gateway adapter that invokes the haxelib
// binary via os/exec.
package haxelib

import (
	"context"
	"os/exec"
	"strings"

	"github.com/TiVo/hxcache/internal/core/domain"
	"github.com/TiVo/hxcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLIGateway implements ports.Gateway by spawning the haxelib executable
// configured on the SDK. Every operation is synchronous; the process runs to
// completion and stdout is returned one trimmed line per record.
type CLIGateway struct {
	sdk    domain.Sdk
	logger ports.Logger
}

// NewGateway creates a gateway bound to one SDK installation.
func NewGateway(sdk domain.Sdk, logger ports.Logger) *CLIGateway {
	return &CLIGateway{
		sdk:    sdk,
		logger: logger,
	}
}

// ListInstalled runs "haxelib list" and returns the installed library names.
// haxelib prints "name: ver1 [ver2]" per library; everything after the first
// colon is version noise.
func (g *CLIGateway) ListInstalled(ctx context.Context) ([]string, error) {
	lines, err := g.run(ctx, "list")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(lines))
	for _, line := range lines {
		name, _, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// ListInstalledWithPaths runs the enhanced "haxelib list-path" command and
// returns its raw "name:version:path" records.
func (g *CLIGateway) ListInstalledWithPaths(ctx context.Context) ([]string, error) {
	return g.run(ctx, "list-path")
}

// LibraryPath runs "haxelib path <name>" and returns its raw output lines.
func (g *CLIGateway) LibraryPath(ctx context.Context, name string) ([]string, error) {
	return g.run(ctx, "path", name)
}

func (g *CLIGateway) run(ctx context.Context, args ...string) ([]string, error) {
	bin := g.sdk.Binary()

	//nolint:gosec // binary and args come from the validated SDK config
	cmd := exec.CommandContext(ctx, bin, args...)
	if home := g.sdk.HomePath.String(); home != "" {
		cmd.Dir = home
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))

			cmdErr := zerr.Wrap(exitErr, domain.ErrGatewayCommandFailed.Error())
			cmdErr = zerr.With(cmdErr, "binary", bin)
			cmdErr = zerr.With(cmdErr, "args", strings.Join(args, " "))
			return nil, zerr.With(cmdErr, "stderr", stderr)
		}

		// The process never started: missing binary or broken SDK config.
		unavailErr := zerr.Wrap(err, domain.ErrGatewayUnavailable.Error())
		unavailErr = zerr.With(unavailErr, "binary", bin)
		return nil, zerr.With(unavailErr, "args", strings.Join(args, " "))
	}

	return splitLines(string(output)), nil
}

// splitLines breaks stdout into trimmed, non-empty lines.
func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
