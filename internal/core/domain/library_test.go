package domain_test

import (
	"testing"

	"github.com/TiVo/hxcache/internal/core/domain"
)

func TestLibraryEntry_IsolatedFromCallers(t *testing.T) {
	cp := domain.NewClasspath(1)
	cp.Add(domain.NewClasspathEntry("lime", "/p1"))

	entry := domain.NewLibraryEntry("lime", cp)

	// Mutating the source classpath after construction must not leak in.
	cp.Add(domain.NewClasspathEntry("lime", "/p2"))
	if entry.Classpath().Size() != 1 {
		t.Errorf("entry classpath size = %d, want 1", entry.Classpath().Size())
	}

	// Mutating the returned classpath must not leak back.
	out := entry.Classpath()
	out.Add(domain.NewClasspathEntry("lime", "/p3"))
	if entry.Classpath().Size() != 1 {
		t.Error("mutating the returned classpath changed the cached entry")
	}

	if entry.Name() != "lime" {
		t.Errorf("Name() = %q, want %q", entry.Name(), "lime")
	}
}
