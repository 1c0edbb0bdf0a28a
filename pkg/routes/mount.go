package routes

import (
	"go/parser"
	"go/token"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Host is the application a Mounter attaches routes to.
// chi.Router satisfies it.
type Host interface {
	Mount(pattern string, h http.Handler)
}

// Route is a mounted route.
type Route struct {
	// Path is the logical path the handler is mounted at.
	Path string

	// Source is the route file the handler was loaded from.
	Source string

	// Kind is the shape of the module the handler was built from.
	Kind Kind

	// Handler is the mounted handler, including any instrumentation.
	Handler http.Handler
}

// Option configures a Mounter.
type Option func(*Mounter)

// WithLogger sets the logger used to report mounted routes.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mounter) {
		m.logger = logger
	}
}

// WithDiscoverOptions passes options through to route discovery.
func WithDiscoverOptions(opts ...DiscoverOption) Option {
	return func(m *Mounter) {
		m.discover = append(m.discover, opts...)
	}
}

// WithMetrics counts and times requests per mounted route on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(m *Mounter) {
		m.metrics = newMetrics(reg)
	}
}

// WithTracer starts a span per request on every mounted route.
func WithTracer(tracer trace.Tracer) Option {
	return func(m *Mounter) {
		m.tracer = tracer
	}
}

// Mounter loads the route modules of a directory and mounts them.
type Mounter struct {
	root     string
	registry *Registry
	logger   *slog.Logger
	discover []DiscoverOption
	metrics  *metrics
	tracer   trace.Tracer
	routes   []Route
}

// NewMounter creates a mounter for the routes directory root.
func NewMounter(root string, reg *Registry, opts ...Option) *Mounter {
	m := &Mounter{
		root:     root,
		registry: reg,
		logger:   slog.Default().With("component", "routes"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mount discovers the route files under root, loads their modules from reg
// and mounts one handler per file on app. It fails before touching app if
// any route file cannot be loaded.
func Mount(app Host, root string, reg *Registry, opts ...Option) (*Mounter, error) {
	m := NewMounter(root, reg, opts...)
	if err := m.MountOn(app); err != nil {
		return nil, err
	}
	return m, nil
}

// Load discovers and loads every route without mounting anything.
//
// Routes keep discovery order. When two files map to the same logical path
// the later one wins: it replaces the earlier route in the table.
func (m *Mounter) Load() ([]Route, error) {
	d := NewDiscoverer(m.root, m.discover...)
	tree, err := d.Discover()
	if err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(tree))
	for _, entry := range tree.Files() {
		route, err := m.load(entry, d.Ext)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	return m.collapse(routes), nil
}

// collapse keeps one route per logical path. A later route replaces an
// earlier one with the same path at the earlier route's position.
func (m *Mounter) collapse(routes []Route) []Route {
	out := make([]Route, 0, len(routes))
	index := make(map[string]int, len(routes))

	for _, route := range routes {
		if i, dup := index[route.Path]; dup {
			m.logger.Warn("route path mapped twice, last one wins",
				"path", route.Path,
				"replaced", out[i].Source,
				"source", route.Source)
			out[i] = route
			continue
		}
		index[route.Path] = len(out)
		out = append(out, route)
	}

	return out
}

// MountOn loads every route and mounts it on app.
func (m *Mounter) MountOn(app Host) error {
	routes, err := m.Load()
	if err != nil {
		return err
	}

	for _, route := range routes {
		app.Mount(route.Path, route.Handler)
		m.logger.Debug("mounted route",
			"path", route.Path,
			"source", route.Source,
			"kind", route.Kind.String())
	}

	m.routes = routes
	return nil
}

// Routes returns the mounted routes in mount order.
func (m *Mounter) Routes() []Route {
	out := make([]Route, len(m.routes))
	copy(out, m.routes)
	return out
}

// load resolves a single route file into a mountable route.
func (m *Mounter) load(entry Entry, ext string) (Route, error) {
	fail := func(err error) (Route, error) {
		return Route{}, &LoadError{Source: entry.Source, Path: entry.Path, Err: err}
	}

	if err := checkPattern(entry.Path); err != nil {
		return fail(err)
	}

	if ext == DefaultExt {
		if err := parseSource(entry.Source); err != nil {
			return fail(err)
		}
	}

	rel, err := filepath.Rel(m.root, entry.Source)
	if err != nil {
		return fail(err)
	}

	mod, ok := m.registry.Lookup(rel)
	if !ok {
		return fail(ErrNotRegistered)
	}

	h, err := mod.build()
	if err != nil {
		return fail(err)
	}

	return Route{
		Path:    entry.Path,
		Source:  entry.Source,
		Kind:    mod.Kind(),
		Handler: m.instrument(entry.Path, h),
	}, nil
}

// CheckSyntax parses every Go route file of tree and returns a *LoadError
// for the first one that is not valid Go source. Files with other
// extensions are not checked.
func CheckSyntax(tree Tree) error {
	for _, e := range tree.Files() {
		if !strings.HasSuffix(e.Source, DefaultExt) {
			continue
		}
		if err := parseSource(e.Source); err != nil {
			return &LoadError{Source: e.Source, Path: e.Path, Err: err}
		}
	}
	return nil
}

func parseSource(source string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, source, nil, parser.SkipObjectResolution)
	return err
}

// instrument wraps h with the configured metrics and tracing.
func (m *Mounter) instrument(path string, h http.Handler) http.Handler {
	if m.metrics != nil {
		h = m.metrics.wrap(path, h)
	}
	if m.tracer != nil {
		h = traced(m.tracer, path, h)
	}
	return h
}
