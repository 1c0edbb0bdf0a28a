// Package routes implements file-system driven route discovery and mounting.
//
// The package provides:
//   - Route discovery from a directory of route files
//   - A registry of route modules keyed by source file
//   - Mounting of every discovered route on a chi router
//   - A best-effort heuristic for the HTTP methods a route file registers
//
// # File Structure Convention
//
// Every route file under the API root becomes one mounted route. The logical
// path is the file's path relative to the root with the extension removed:
//
//	api/
//	├── router.go          → mount-control file, never mounted
//	├── user.go            → /user
//	└── order/
//	    └── detail.go      → /order/detail
//
// # Route Modules
//
// Go cannot load a source file at run time, so each route file registers a
// Module for itself, keyed by its path relative to the root. A Module is
// either a ready handler or a function that configures a fresh chi router:
//
//	func init() {
//	    modules.Register("user.go", routes.Configure(func(router chi.Router) {
//	        router.Get("/", listUsers)
//	        router.Post("/", createUser)
//	    }))
//	}
//
//	func init() {
//	    modules.Register("health.go", routes.Handler(healthHandler))
//	}
//
// # Usage
//
//	app := chi.NewRouter()
//	if _, err := routes.Mount(app, "api", modules); err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":3000", app)
//
// # Instrumentation
//
// WithMetrics counts and times requests per mounted route with Prometheus,
// and WithTracer (or WithTracing, for the global provider) starts an
// OpenTelemetry span per request. Both wrap the handler at mount time.
package routes
