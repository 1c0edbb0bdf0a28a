// Package errors provides structured, actionable error messages for the
// routefs command line.
//
// Library packages return plain typed errors. The CLI converts them into an
// *Error carrying a stable code, a category, a longer explanation and a hint,
// and prints either a single line (FormatCompact) or the full report
// (Format).
//
// # Error Codes
//
//	E100-E119  routes: discovery and loading of route files
//	E120-E139  config: routefs.json / .yaml / .toml
//	E140-E149  cli: project scaffolding and output files
//	E150-E159  publish: artifact upload
//	E160-E169  generate: docs, client and OpenAPI generation
//
// # Usage
//
//	err := errors.New("E101").
//	    WithLocation("api/user.go", 7, 2).
//	    WithSuggestion("Fix the syntax error in the route file")
//
//	fmt.Fprint(os.Stderr, err.Format())
package errors
