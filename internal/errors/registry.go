package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Route Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryRoutes,
		Message:  "API directory does not exist",
		Detail:   "Routes are discovered from the API directory, which is missing or is not a directory.",
	},
	"E101": {
		Category: CategoryRoutes,
		Message:  "Route file failed to load",
		Detail:   "A route file could not be parsed or has no registered route module. No routes were mounted.",
	},
	"E102": {
		Category: CategoryRoutes,
		Message:  "Invalid ignore pattern",
		Detail:   "An ignore pattern is not a valid glob. Patterns use doublestar syntax, e.g. **/*_test.go.",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Configuration files must end in .json, .yaml, .yml or .toml.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The port must be between 1 and 65535.",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid route extension",
		Detail:   "The route file extension must start with a dot, e.g. .go.",
	},

	// ============================================
	// CLI Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Project folder already exists",
		Detail:   "The scaffolder never writes into an existing directory.",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Invalid project name",
		Detail:   "Project names become directory names and Go module paths.",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Could not write file",
		Detail:   "A generated file could not be written.",
	},
	"E143": {
		Category: CategoryCLI,
		Message:  "Command failed",
		Detail:   "The command stopped with an error that has no more specific code.",
	},

	// ============================================
	// Publish Errors (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "The generated artifact could not be uploaded.",
	},
	"E151": {
		Category: CategoryPublish,
		Message:  "Invalid publish target",
		Detail:   "Publish targets are a local directory or s3://bucket/prefix.",
	},

	// ============================================
	// Generate Errors (E160-E169)
	// ============================================

	"E160": {
		Category: CategoryGenerate,
		Message:  "Code generation failed",
		Detail:   "The client, docs or OpenAPI document could not be generated.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
