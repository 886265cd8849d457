// Package domain contains the core types for haxelib classpath resolution.
package domain

// ClasspathEntry is a single filesystem path contributed to a classpath,
// together with the library that contributed it. Two entries are equal when
// both path and owning library match.
type ClasspathEntry struct {
	Path    InternedString
	Library InternedString
}

// NewClasspathEntry creates a ClasspathEntry for the given library and path.
func NewClasspathEntry(library, path string) ClasspathEntry {
	return ClasspathEntry{
		Path:    NewInternedString(path),
		Library: NewInternedString(library),
	}
}

// Classpath is an ordered collection of classpath entries. Adding a path that
// is already present is a no-op, so merging several libraries preserves the
// first-seen order of every path. The compiler is sensitive to entry order,
// which is why this is not a plain set.
//
// The zero value is an empty classpath ready for use.
type Classpath struct {
	entries []ClasspathEntry
	paths   map[InternedString]struct{}
}

// NewClasspath creates an empty Classpath with capacity for sizeHint entries.
func NewClasspath(sizeHint int) Classpath {
	return Classpath{
		entries: make([]ClasspathEntry, 0, sizeHint),
		paths:   make(map[InternedString]struct{}, sizeHint),
	}
}

// Add appends the entry unless its path is already present.
// It reports whether the entry was added.
func (c *Classpath) Add(entry ClasspathEntry) bool {
	if c.paths == nil {
		c.paths = make(map[InternedString]struct{})
	}
	if _, dup := c.paths[entry.Path]; dup {
		return false
	}
	c.paths[entry.Path] = struct{}{}
	c.entries = append(c.entries, entry)
	return true
}

// AddAll appends every entry from other, keeping first-seen path order.
func (c *Classpath) AddAll(other Classpath) {
	for _, entry := range other.entries {
		c.Add(entry)
	}
}

// Contains reports whether the given path is already on the classpath.
func (c Classpath) Contains(path string) bool {
	_, ok := c.paths[NewInternedString(path)]
	return ok
}

// Size returns the number of entries.
func (c Classpath) Size() int {
	return len(c.entries)
}

// IsEmpty reports whether the classpath has no entries.
func (c Classpath) IsEmpty() bool {
	return len(c.entries) == 0
}

// Entries returns a fresh copy of the entries in order. Mutating the returned
// slice does not affect the classpath.
func (c Classpath) Entries() []ClasspathEntry {
	out := make([]ClasspathEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Paths returns the entry paths in order as plain strings.
func (c Classpath) Paths() []string {
	out := make([]string, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry.Path.String()
	}
	return out
}

// Clone returns an independent copy of the classpath. The copy and the
// original can be mutated without affecting each other, which is how cached
// resolutions are kept isolated from callers.
func (c Classpath) Clone() Classpath {
	clone := NewClasspath(len(c.entries))
	clone.entries = append(clone.entries, c.entries...)
	for path := range c.paths {
		clone.paths[path] = struct{}{}
	}
	return clone
}
