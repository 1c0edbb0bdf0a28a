// Package scaffold creates starter projects from a template set.
//
// A template set maps slash-separated file paths to text/template source.
// Scaffold renders every template with the project Data and writes the
// results under a new project directory:
//
//	files, err := scaffold.Scaffold("my-api-project", ".", scaffold.DefaultTemplates(), scaffold.Data{})
//	var exists *scaffold.AlreadyExistsError
//	if errors.As(err, &exists) {
//	    // the folder was already there, nothing was written
//	}
//
// # Template Variables
//
//	{{.ProjectName}}  - Name of the project
//	{{.ModulePath}}   - Go module path (defaults to the project name)
//	{{.Port}}         - Port the generated server listens on
//
// # Default Project
//
//	go.mod         module manifest
//	main.go        server entry point
//	routefs.json   CLI configuration
//	api/router.go  mounts the api directory
//	api/user.go    example route
package scaffold
