package routes

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExcludeFunc reports whether a directory entry must be skipped during
// discovery. rel is the slash-separated path relative to the routes root.
type ExcludeFunc func(rel string, d fs.DirEntry) bool

// EntryFileFor returns the name of the mount-control file for route files
// with the given extension: router.go for .go, router.js for .js.
func EntryFileFor(ext string) string {
	return strings.TrimSuffix(EntryFile, DefaultExt) + ext
}

// DefaultExclude skips the mount-control file and, for Go route files,
// test files.
func DefaultExclude(ext string) ExcludeFunc {
	entry := ExcludeName(EntryFileFor(ext))
	if ext == DefaultExt {
		return AnyOf(entry, ExcludeSuffix("_test.go"))
	}
	return entry
}

// ExcludeName skips files with the given base name at any depth.
func ExcludeName(name string) ExcludeFunc {
	return func(_ string, d fs.DirEntry) bool {
		return !d.IsDir() && d.Name() == name
	}
}

// ExcludeSuffix skips files whose name ends with suffix.
func ExcludeSuffix(suffix string) ExcludeFunc {
	return func(_ string, d fs.DirEntry) bool {
		return !d.IsDir() && strings.HasSuffix(d.Name(), suffix)
	}
}

// ExcludeGlob skips entries whose relative path matches any of the
// doublestar patterns (e.g., "**/*_test.go", "internal/**").
func ExcludeGlob(patterns ...string) (ExcludeFunc, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return func(rel string, _ fs.DirEntry) bool {
		for _, p := range patterns {
			// Patterns are validated above; Match only fails on bad patterns.
			if ok, _ := doublestar.Match(p, rel); ok {
				return true
			}
		}
		return false
	}, nil
}

// AnyOf combines predicates; an entry is skipped if any of them skips it.
func AnyOf(fns ...ExcludeFunc) ExcludeFunc {
	return func(rel string, d fs.DirEntry) bool {
		for _, fn := range fns {
			if fn != nil && fn(rel, d) {
				return true
			}
		}
		return false
	}
}
