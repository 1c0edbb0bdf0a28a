package gen

import (
	"strings"
	"text/template"

	"github.com/lithammer/dedent"

	"github.com/vango-dev/routefs/pkg/routes"
)

// DefaultBaseURL is the base URL baked into a generated client when none is
// given.
const DefaultBaseURL = "http://localhost:3000"

var clientTemplate = template.Must(template.New("apiClient.js").Parse(strings.TrimSpace(dedent.Dedent(`
	class APIClient {
	    constructor(baseURL) {
	        this.baseURL = baseURL;
	    }

	    async request(endpoint, options = {}) {
	        const response = await fetch(
	            `+"`${this.baseURL}${endpoint}`"+`,
	            { ...options, headers: { 'Content-Type': 'application/json', ...options.headers } }
	        );
	        return response.json();
	    }

	{{range .Methods}}    async {{.Name}}() {
	        return this.request('{{js .Route}}', { method: '{{.Method}}' });
	    }
	{{end}}}

	export default new APIClient('{{js .BaseURL}}');
	`))))

// ClientMethod is one generated client method.
type ClientMethod struct {
	// Name is the JavaScript method name (e.g., "_user_get").
	Name string

	// Route is the logical path the method calls.
	Route string

	// Method is the upper-case HTTP method.
	Method string
}

// ClientMethodName returns the client method name for a route and method:
// every "/" of the route becomes "_", then only the first "-" becomes "_",
// and the lower-case method is appended after an underscore.
//
//	ClientMethodName("/order/detail", "GET")  // "_order_detail_get"
//	ClientMethodName("/a-b-c", "POST")        // "_a_b-c_post"
func ClientMethodName(route, method string) string {
	name := strings.ReplaceAll(route, "/", "_")
	name = strings.Replace(name, "-", "_", 1)
	return name + "_" + strings.ToLower(method)
}

// ClientMethods returns the client methods for tree, one per route and
// inferred method, in tree order.
func ClientMethods(tree routes.Tree) []ClientMethod {
	var methods []ClientMethod
	for _, e := range tree.Files() {
		for _, m := range routes.InferMethods(e.Source) {
			methods = append(methods, ClientMethod{
				Name:   ClientMethodName(e.Path, m),
				Route:  e.Path,
				Method: m,
			})
		}
	}
	return methods
}

// GenerateClient renders a JavaScript API client for tree. The client is an
// APIClient class with one async method per route and inferred method, and
// the file's default export is an instance bound to baseURL.
func GenerateClient(tree routes.Tree, baseURL string) (string, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var b strings.Builder
	err := clientTemplate.Execute(&b, struct {
		BaseURL string
		Methods []ClientMethod
	}{baseURL, ClientMethods(tree)})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
