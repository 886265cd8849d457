package domain

// LibraryEntry is a cached resolution result: one library name and the
// classpath haxelib reported for it. Entries are immutable once constructed;
// the classpath is cloned both on the way in and on the way out so no caller
// ever shares mutable state with the cache.
type LibraryEntry struct {
	name      InternedString
	classpath Classpath
}

// NewLibraryEntry creates a LibraryEntry holding an independent copy of the
// given classpath.
func NewLibraryEntry(name string, classpath Classpath) *LibraryEntry {
	return &LibraryEntry{
		name:      NewInternedString(name),
		classpath: classpath.Clone(),
	}
}

// Name returns the library name.
func (e *LibraryEntry) Name() string {
	return e.name.String()
}

// Classpath returns a copy of the resolved classpath.
func (e *LibraryEntry) Classpath() Classpath {
	return e.classpath.Clone()
}
