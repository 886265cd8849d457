package domain

import "go.trai.ch/zerr"

var (
	// ErrGatewayUnavailable is returned when the haxelib binary cannot be
	// invoked at all (missing binary, bad SDK configuration).
	ErrGatewayUnavailable = zerr.New("haxelib unavailable")

	// ErrGatewayCommandFailed is returned when haxelib was invoked but exited
	// with a failure.
	ErrGatewayCommandFailed = zerr.New("haxelib command failed")

	// ErrMalformedListing is returned when a line of haxelib output does not
	// match the expected record schema.
	ErrMalformedListing = zerr.New("malformed haxelib listing line")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoLibrariesSpecified is returned when a resolve request names no libraries.
	ErrNoLibrariesSpecified = zerr.New("no libraries specified")
)
