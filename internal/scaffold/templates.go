package scaffold

// TemplateSet maps slash-separated file paths to template text.
type TemplateSet map[string]string

// DefaultTemplates returns a new copy of the default project template set.
func DefaultTemplates() TemplateSet {
	return TemplateSet{
		"go.mod":        goModTemplate,
		"main.go":       mainTemplate,
		"routefs.json":  configTemplate,
		"api/router.go": routerTemplate,
		"api/user.go":   userTemplate,
	}
}

const goModTemplate = `module {{.ModulePath}}

go 1.24

require (
	github.com/go-chi/chi/v5 v5.2.3
	github.com/vango-dev/routefs v0.1.0
)
`

const mainTemplate = `package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"{{.ModulePath}}/api"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "{{.Port}}"
	}

	app := chi.NewRouter()
	app.Use(middleware.Recoverer)

	if err := api.LoadRoutes(app); err != nil {
		slog.Error("failed to load routes", "error", err)
		os.Exit(1)
	}

	slog.Info("{{.ProjectName}} running on http://localhost:" + port)
	if err := http.ListenAndServe(":"+port, app); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
`

const configTemplate = `{
  "name": "{{.ProjectName}}",
  "port": {{.Port}},
  "paths": {
    "api": "api"
  },
  "client": {
    "output": "apiClient.js",
    "baseURL": "http://localhost:{{.Port}}"
  }
}
`

const routerTemplate = `package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/vango-dev/routefs/pkg/routes"
)

// Dir is the routes directory, relative to the working directory.
const Dir = "api"

// Modules holds the route modules of this directory. Every route file
// registers itself under its path relative to Dir.
var Modules = routes.NewRegistry()

// LoadRoutes mounts every route file of Dir on app.
func LoadRoutes(app chi.Router) error {
	_, err := routes.Mount(app, Dir, Modules)
	return err
}
`

const userTemplate = `package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vango-dev/routefs/pkg/routes"
)

func init() {
	Modules.Register("user.go", routes.Configure(func(router chi.Router) {
		router.Get("/", getUser)
	}))
}

func getUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "User endpoint"})
}
`
