package gen

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/vango-dev/routefs/pkg/routes"
)

// OpenAPIVersion is the OpenAPI version of generated documents.
const OpenAPIVersion = "3.0.3"

// Info describes the API in a generated OpenAPI document.
type Info struct {
	Title   string
	Version string

	// BaseURL becomes the document's only server when set.
	BaseURL string
}

var operationVerbs = map[string]string{
	http.MethodGet:    "Fetch data from",
	http.MethodPost:   "Send data to",
	http.MethodPut:    "Update data at",
	http.MethodDelete: "Remove data at",
}

// GenerateOpenAPI builds an OpenAPI document with one path item per route in
// tree and one operation per inferred method. Operation IDs follow
// ClientMethodName, so they match the generated client. The document is
// validated before it is returned.
func GenerateOpenAPI(ctx context.Context, tree routes.Tree, info Info) (*openapi3.T, error) {
	if info.Title == "" {
		info.Title = "API"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}

	doc := &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info: &openapi3.Info{
			Title:   info.Title,
			Version: info.Version,
		},
		Paths: openapi3.NewPaths(),
	}
	if info.BaseURL != "" {
		doc.Servers = openapi3.Servers{{URL: info.BaseURL}}
	}

	for _, e := range tree.Files() {
		path, params := openAPIPath(e.Path)

		item := &openapi3.PathItem{}
		for _, name := range params {
			item.Parameters = append(item.Parameters, &openapi3.ParameterRef{
				Value: openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()),
			})
		}
		for _, method := range routes.InferMethods(e.Source) {
			item.SetOperation(method, newOperation(e.Path, method))
		}
		doc.Paths.Set(path, item)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

func newOperation(route, method string) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = ClientMethodName(route, method)
	op.Summary = operationVerbs[method] + " " + route
	if tag := routeTag(route); tag != "" {
		op.Tags = []string{tag}
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription(http.StatusText(http.StatusOK)),
		}),
	)
	return op
}

// routeTag is the first segment of route, unless that segment is a
// parameter.
func routeTag(route string) string {
	tag, _, _ := strings.Cut(strings.TrimPrefix(route, "/"), "/")
	if strings.HasPrefix(tag, "{") {
		return ""
	}
	return tag
}

// openAPIPath rewrites chi parameters, "{id}" or "{id:[0-9]+}", into
// OpenAPI path templates and returns the parameter names in order.
func openAPIPath(route string) (string, []string) {
	var (
		b     strings.Builder
		names []string
	)
	depth, start := 0, 0
	for i := 0; i < len(route); i++ {
		c := route[i]
		switch {
		case c == '{':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case c == '}' && depth > 0:
			depth--
			if depth == 0 {
				name, _, _ := strings.Cut(route[start:i], ":")
				names = append(names, name)
				b.WriteString("{" + name + "}")
			}
		case depth == 0:
			b.WriteByte(c)
		}
	}
	return b.String(), names
}
