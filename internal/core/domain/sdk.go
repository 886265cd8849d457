package domain

const defaultHaxelibBinary = "haxelib"

// Sdk describes one Haxe tool installation. Library listings and resolved
// paths differ between installations, so every cache instance is bound to
// exactly one Sdk.
type Sdk struct {
	// Name is a human-readable label for the installation (e.g. "haxe-4.3").
	Name InternedString

	// HomePath is the installation root of the SDK.
	HomePath InternedString

	// Version is the reported tool version string.
	Version InternedString

	// HaxelibBin is the haxelib executable to invoke. Empty means resolve
	// "haxelib" through PATH.
	HaxelibBin InternedString

	// ListPathSupported reports whether this installation's haxelib accepts
	// the bulk "list-path" subcommand. Enhanced builds expose library name,
	// version and install path in a single call; stock builds require one
	// "path" call per library.
	ListPathSupported bool
}

// Binary returns the haxelib executable path, falling back to the default
// binary name when none is configured.
func (s Sdk) Binary() string {
	if s.HaxelibBin.IsZero() || s.HaxelibBin.String() == "" {
		return defaultHaxelibBinary
	}
	return s.HaxelibBin.String()
}

// Identity returns the fields that distinguish one installation from another.
// Two Sdks with equal identity share the same installed libraries and may
// share one cache instance.
func (s Sdk) Identity() string {
	return s.HomePath.String() + "\x00" + s.Version.String() + "\x00" + s.Binary()
}
