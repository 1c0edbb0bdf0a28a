package routes

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// LogicalPath converts a file path relative to the routes root into a route
// path. The extension is stripped from the last element and both slash
// styles are normalized to "/":
//
//	user.go          → /user
//	order/detail.go  → /order/detail
//	order\detail.go  → /order/detail
func LogicalPath(rel, ext string) string {
	p := strings.ReplaceAll(rel, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	if ext != "" {
		p = strings.TrimSuffix(p, ext)
	}
	p = strings.Trim(p, "/")
	if p == "" {
		return "/"
	}
	return "/" + p
}

// joinRoute appends a directory entry name to a route prefix.
func joinRoute(prefix, name, ext string) string {
	if ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	return strings.TrimSuffix(prefix, "/") + "/" + name
}

// sourceKey normalizes a relative source path into the form used as a
// registry key: slash separated, cleaned, without a leading "./" or "/".
func sourceKey(rel string) string {
	p := strings.ReplaceAll(rel, "\\", "/")
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// checkPattern reports whether p can be mounted as a chi pattern. Route
// paths come from file names, which may hold characters chi treats as
// syntax: "*" is rejected outright, and every "{param}" or "{param:regexp}"
// must be closed within its segment, named once, and compile.
func checkPattern(p string) error {
	if strings.Contains(p, "*") {
		return fmt.Errorf("%w: %q contains a wildcard", ErrInvalidPath, p)
	}

	seen := make(map[string]bool)
	for _, seg := range strings.Split(p, "/") {
		depth, start := 0, 0
		for i := 0; i < len(seg); i++ {
			switch seg[i] {
			case '{':
				if depth == 0 {
					start = i + 1
				}
				depth++
			case '}':
				depth--
				if depth < 0 {
					return fmt.Errorf("%w: %q has an unopened '}'", ErrInvalidPath, p)
				}
				if depth > 0 {
					continue
				}
				key, rexpat, hasRexp := strings.Cut(seg[start:i], ":")
				if key == "" {
					return fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPath, p)
				}
				if seen[key] {
					return fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPath, p, key)
				}
				seen[key] = true
				if hasRexp {
					if _, err := regexp.Compile(rexpat); err != nil {
						return fmt.Errorf("%w: %q: %v", ErrInvalidPath, p, err)
					}
				}
			}
		}
		if depth != 0 {
			return fmt.Errorf("%w: %q has an unclosed '{'", ErrInvalidPath, p)
		}
	}
	return nil
}
