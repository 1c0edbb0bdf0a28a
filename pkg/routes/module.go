package routes

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

// Kind identifies which shape a route module has.
type Kind int

const (
	// KindInvalid is the zero Kind; it is never mounted.
	KindInvalid Kind = iota

	// KindHandler is a ready request handler mounted as is.
	KindHandler

	// KindConfigure is a function that configures a fresh router.
	KindConfigure
)

func (k Kind) String() string {
	switch k {
	case KindHandler:
		return "handler"
	case KindConfigure:
		return "configure"
	default:
		return "invalid"
	}
}

// Module is the definition a route file registers for itself.
// Build one with Handler, HandlerFunc or Configure.
type Module struct {
	kind      Kind
	handler   http.Handler
	configure func(chi.Router)
}

// Handler returns a module that mounts h directly.
func Handler(h http.Handler) Module {
	return Module{kind: KindHandler, handler: h}
}

// HandlerFunc returns a module that mounts fn directly.
func HandlerFunc(fn http.HandlerFunc) Module {
	if fn == nil {
		return Module{kind: KindHandler}
	}
	return Handler(fn)
}

// Configure returns a module whose handler is a fresh chi router passed
// once to fn at mount time.
func Configure(fn func(router chi.Router)) Module {
	return Module{kind: KindConfigure, configure: fn}
}

// Kind returns the module's shape.
func (m Module) Kind() Kind {
	return m.kind
}

// build resolves the module into the handler to mount.
func (m Module) build() (http.Handler, error) {
	switch m.kind {
	case KindHandler:
		if m.handler == nil {
			return nil, ErrInvalidModule
		}
		return m.handler, nil
	case KindConfigure:
		if m.configure == nil {
			return nil, ErrInvalidModule
		}
		r := chi.NewRouter()
		m.configure(r)
		return r, nil
	default:
		return nil, ErrInvalidModule
	}
}

// Registry maps route files to their modules. Keys are paths relative to
// the routes root, slash separated (e.g., "order/detail.go").
//
// A Registry is filled from init functions and read at mount; it is not
// safe for concurrent registration.
type Registry struct {
	modules map[string]Module
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register records the module for a route file.
// It panics if the same file is registered twice.
func (r *Registry) Register(source string, m Module) {
	key := sourceKey(source)
	if _, dup := r.modules[key]; dup {
		panic(fmt.Sprintf("routes: Register called twice for %s", key))
	}
	r.modules[key] = m
}

// Lookup returns the module registered for a route file.
func (r *Registry) Lookup(source string) (Module, bool) {
	if r == nil {
		return Module{}, false
	}
	m, ok := r.modules[sourceKey(source)]
	return m, ok
}

// Sources returns the registered route files, sorted.
func (r *Registry) Sources() []string {
	sources := make([]string, 0, len(r.modules))
	for k := range r.modules {
		sources = append(sources, k)
	}
	sort.Strings(sources)
	return sources
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.modules)
}
