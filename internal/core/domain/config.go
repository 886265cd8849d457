package domain

// ToolConfig is the loaded hxcache configuration: which SDK to resolve
// against, plus resolution tuning that is not part of the SDK identity.
type ToolConfig struct {
	// Sdk is the tool installation all lookups run against.
	Sdk Sdk
}
