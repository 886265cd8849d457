package haxelib_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TiVo/hxcache/internal/adapters/haxelib"
	"github.com/TiVo/hxcache/internal/adapters/logger"
	"github.com/TiVo/hxcache/internal/core/domain"
	"github.com/stretchr/testify/require"
)

// stubHaxelib writes a shell script that mimics the haxelib binary and
// returns an Sdk pointing at it.
func stubHaxelib(t *testing.T, script string) domain.Sdk {
	t.Helper()

	dir := t.TempDir()
	bin := filepath.Join(dir, "haxelib")
	err := os.WriteFile(bin, []byte("#!/bin/sh\n"+script), 0o700) //nolint:gosec // test fixture must be executable
	require.NoError(t, err)

	return domain.Sdk{
		HomePath:   domain.NewInternedString(dir),
		Version:    domain.NewInternedString("4.3.4"),
		HaxelibBin: domain.NewInternedString(bin),
	}
}

func TestCLIGateway_ListInstalled(t *testing.T) {
	sdk := stubHaxelib(t, `
if [ "$1" = "list" ]; then
  echo "lime: 7.9.0 [8.0.2]"
  echo "openfl: 9.2.1"
  echo ""
fi
`)

	gw := haxelib.NewGateway(sdk, logger.New())
	names, err := gw.ListInstalled(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"lime", "openfl"}, names)
}

func TestCLIGateway_ListInstalledWithPaths(t *testing.T) {
	sdk := stubHaxelib(t, `
if [ "$1" = "list-path" ]; then
  echo "lime:8.0.2:/haxelib/lime/8,0,2/"
  echo "openfl:9.2.1:/haxelib/openfl/9,2,1/"
fi
`)

	gw := haxelib.NewGateway(sdk, logger.New())
	lines, err := gw.ListInstalledWithPaths(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{
		"lime:8.0.2:/haxelib/lime/8,0,2/",
		"openfl:9.2.1:/haxelib/openfl/9,2,1/",
	}, lines)
}

func TestCLIGateway_LibraryPath(t *testing.T) {
	sdk := stubHaxelib(t, `
if [ "$1" = "path" ] && [ "$2" = "lime" ]; then
  echo "/haxelib/lime/8,0,2/src"
  echo "-D lime"
fi
`)

	gw := haxelib.NewGateway(sdk, logger.New())
	lines, err := gw.LibraryPath(context.Background(), "lime")
	require.NoError(t, err)
	// The gateway returns raw records; filtering the -D define is the
	// cache's job, not the gateway's.
	require.Equal(t, []string{"/haxelib/lime/8,0,2/src", "-D lime"}, lines)
}

func TestCLIGateway_MissingBinary(t *testing.T) {
	sdk := domain.Sdk{
		HaxelibBin: domain.NewInternedString(filepath.Join(t.TempDir(), "no-such-haxelib")),
	}

	gw := haxelib.NewGateway(sdk, logger.New())
	_, err := gw.ListInstalled(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), domain.ErrGatewayUnavailable.Error())
}

func TestCLIGateway_CommandFailure(t *testing.T) {
	sdk := stubHaxelib(t, `
echo "Library nope is not installed" >&2
exit 1
`)

	gw := haxelib.NewGateway(sdk, logger.New())
	_, err := gw.LibraryPath(context.Background(), "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), domain.ErrGatewayCommandFailed.Error())
}

func TestCLIGateway_ContextCancelled(t *testing.T) {
	sdk := stubHaxelib(t, `
sleep 5
`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gw := haxelib.NewGateway(sdk, logger.New())
	_, err := gw.ListInstalled(ctx)
	require.Error(t, err)
}

func TestCLIGateway_CRLFOutput(t *testing.T) {
	sdk := stubHaxelib(t, `
if [ "$1" = "list" ]; then
  printf 'lime: 8.0.2\r\n'
  printf 'openfl: 9.2.1\r\n'
fi
`)

	gw := haxelib.NewGateway(sdk, logger.New())
	names, err := gw.ListInstalled(context.Background())
	require.NoError(t, err)
	require.False(t, strings.ContainsRune(strings.Join(names, ""), '\r'))
	require.Equal(t, []string{"lime", "openfl"}, names)
}
