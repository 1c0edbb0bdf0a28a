package routes

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultExt is the extension a file must carry to be a route file.
	DefaultExt = ".go"

	// EntryFile is the mount-control file of a routes directory. It holds
	// the registry and the Mount call and is never mounted itself.
	EntryFile = "router.go"
)

// Entry is a single discovered route.
type Entry struct {
	// Path is the logical route path (e.g., "/order/detail").
	Path string

	// Source is the file-system path of the route file or directory.
	Source string

	// IsDir reports whether the entry is a directory. Directory entries are
	// only produced when IncludeDirs is set.
	IsDir bool
}

// Tree is the ordered result of a discovery, depth first.
//
// Entries within a directory follow os.ReadDir order, which is sorted by
// file name. Callers that read the tree through other means must not rely
// on that order across platforms and should sort explicitly.
type Tree []Entry

// Files returns the file entries of the tree.
func (t Tree) Files() Tree {
	files := make(Tree, 0, len(t))
	for _, e := range t {
		if !e.IsDir {
			files = append(files, e)
		}
	}
	return files
}

// Paths returns the logical paths of the file entries.
func (t Tree) Paths() []string {
	paths := make([]string, 0, len(t))
	for _, e := range t {
		if !e.IsDir {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// Discoverer walks a routes directory.
type Discoverer struct {
	// Root is the routes directory.
	Root string

	// Ext is the recognized route file extension (default: ".go").
	Ext string

	// Exclude reports whether an entry must be skipped. Excluded
	// directories are not descended into. Nil means DefaultExclude(Ext).
	Exclude ExcludeFunc

	// IncludeDirs adds an entry for every directory before its children.
	IncludeDirs bool
}

// DiscoverOption configures a Discoverer.
type DiscoverOption func(*Discoverer)

// WithExt sets the recognized route file extension.
func WithExt(ext string) DiscoverOption {
	return func(d *Discoverer) {
		d.Ext = ext
	}
}

// WithExclude sets the exclusion predicate.
func WithExclude(fn ExcludeFunc) DiscoverOption {
	return func(d *Discoverer) {
		d.Exclude = fn
	}
}

// WithDirs includes directory entries in the result.
func WithDirs() DiscoverOption {
	return func(d *Discoverer) {
		d.IncludeDirs = true
	}
}

// NewDiscoverer creates a discoverer for root.
func NewDiscoverer(root string, opts ...DiscoverOption) *Discoverer {
	d := &Discoverer{Root: root, Ext: DefaultExt}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover walks root and returns its route tree.
func Discover(root string, opts ...DiscoverOption) (Tree, error) {
	return NewDiscoverer(root, opts...).Discover()
}

// Discover walks the root directory and returns one entry per route file.
// A missing root fails with a *NotFoundError. Any other traversal error,
// including a broken symlink, fails the whole walk.
func (d *Discoverer) Discover() (Tree, error) {
	info, err := os.Stat(d.Root)
	if err != nil {
		return nil, &NotFoundError{Dir: d.Root, Err: err}
	}
	if !info.IsDir() {
		return nil, &NotFoundError{Dir: d.Root, Err: fmt.Errorf("%s is not a directory", d.Root)}
	}

	w := &walker{
		d:       d,
		ext:     d.Ext,
		exclude: d.Exclude,
		visited: make(map[string]bool),
	}
	if w.exclude == nil {
		w.exclude = DefaultExclude(d.Ext)
	}

	if err := w.walk(d.Root, "", ""); err != nil {
		return nil, err
	}
	return w.tree, nil
}

type walker struct {
	d       *Discoverer
	ext     string
	exclude ExcludeFunc
	visited map[string]bool
	tree    Tree
}

// walk lists dir and recurses into subdirectories with the accumulated
// route prefix. rel is dir's slash-separated path relative to the root.
func (w *walker) walk(dir, rel, prefix string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	if w.visited[resolved] {
		return fmt.Errorf("symlink cycle at %s", dir)
	}
	w.visited[resolved] = true
	defer delete(w.visited, resolved)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)
		entryRel := name
		if rel != "" {
			entryRel = rel + "/" + name
		}

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(full)
			if err != nil {
				return err
			}
			isDir = target.IsDir()
		}

		if w.exclude(entryRel, entry) {
			continue
		}

		routePath := joinRoute(prefix, name, w.ext)

		if isDir {
			if w.d.IncludeDirs {
				w.tree = append(w.tree, Entry{Path: routePath, Source: full, IsDir: true})
			}
			if err := w.walk(full, entryRel, routePath); err != nil {
				return err
			}
			continue
		}

		if !strings.HasSuffix(name, w.ext) {
			continue
		}

		w.tree = append(w.tree, Entry{Path: routePath, Source: full})
	}

	return nil
}
