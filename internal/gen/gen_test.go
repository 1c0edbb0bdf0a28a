package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/vango-dev/routefs/pkg/routes"
)

const userRoute = `package api

func init() {
	modules.Register("user.go", routes.Configure(func(router chi.Router) {
		router.Get("/", listUsers)
		router.Post("/", createUser)
	}))
}
`

const statusRoute = `package api

func init() {
	modules.Register("status.go", routes.HandlerFunc(status))
}
`

// apiTree writes files under a temp routes directory and discovers it.
func apiTree(t *testing.T, files map[string]string) routes.Tree {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	tree, err := routes.Discover(root)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	return tree
}

func TestGenerateDocs(t *testing.T) {
	got := GenerateDocs([]string{"/user"})
	want := "# API Documentation\n\n## Endpoints\n" +
		"### `/user`\n" +
		"- **GET**: Fetch data from /user\n" +
		"- **POST**: Send data to /user\n" +
		"- **PUT**: Update data at /user\n" +
		"- **DELETE**: Remove data at /user\n" +
		"\n"

	if got != want {
		t.Errorf("GenerateDocs() =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerateDocsEmpty(t *testing.T) {
	if got := GenerateDocs(nil); got != docsHeader {
		t.Errorf("GenerateDocs(nil) = %q, want %q", got, docsHeader)
	}
}

func TestGenerateDocsOrder(t *testing.T) {
	got := GenerateDocs([]string{"/b", "/a"})
	if strings.Index(got, "### `/b`") > strings.Index(got, "### `/a`") {
		t.Error("routes should be documented in input order")
	}
}

func TestClientMethodName(t *testing.T) {
	tests := []struct {
		route  string
		method string
		want   string
	}{
		{"/user", "GET", "_user_get"},
		{"/order/detail", "POST", "_order_detail_post"},
		{"/a-b-c", "PUT", "_a_b-c_put"},
		{"/x/y-z", "DELETE", "_x_y_z_delete"},
	}

	for _, tt := range tests {
		if got := ClientMethodName(tt.route, tt.method); got != tt.want {
			t.Errorf("ClientMethodName(%q, %q) = %q, want %q", tt.route, tt.method, got, tt.want)
		}
	}
}

func TestGenerateClient(t *testing.T) {
	tree := apiTree(t, map[string]string{
		"router.go": "package api\n",
		"user.go":   userRoute,
		"status.go": statusRoute,
	})

	code, err := GenerateClient(tree, "http://api.test")
	if err != nil {
		t.Fatalf("GenerateClient error: %v", err)
	}

	for _, want := range []string{
		"class APIClient {",
		"async request(endpoint, options = {}) {",
		"`${this.baseURL}${endpoint}`",
		"    async _user_get() {\n        return this.request('/user', { method: 'GET' });\n    }\n",
		"    async _user_post() {\n        return this.request('/user', { method: 'POST' });\n    }\n",
		"export default new APIClient('http://api.test');",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("client missing %q:\n%s", want, code)
		}
	}

	for _, unwanted := range []string{"_user_put", "_user_delete", "_status_", "_router_"} {
		if strings.Contains(code, unwanted) {
			t.Errorf("client should not contain %q", unwanted)
		}
	}

	if !strings.HasPrefix(code, "class APIClient {\n    constructor(baseURL) {") {
		t.Errorf("client should start with the class declaration:\n%s", code)
	}
	if !strings.HasSuffix(code, "});\n    }\n}\n\nexport default new APIClient('http://api.test');") {
		t.Errorf("unexpected client ending:\n%s", code)
	}
}

func TestGenerateClientDefaultBaseURL(t *testing.T) {
	code, err := GenerateClient(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(code, "new APIClient('"+DefaultBaseURL+"')") {
		t.Errorf("client should default to %s:\n%s", DefaultBaseURL, code)
	}
	if strings.Contains(code, "async _") {
		t.Error("empty tree should produce no route methods")
	}
}

func TestGenerateClientEscapesQuotes(t *testing.T) {
	code, err := GenerateClient(nil, "http://x'y")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(code, `new APIClient('http://x\'y')`) {
		t.Errorf("base URL not escaped:\n%s", code)
	}
}

// Docs always list four methods; the client only lists inferred ones.
func TestDocsClientAsymmetry(t *testing.T) {
	tree := apiTree(t, map[string]string{"user.go": userRoute})

	docs := GenerateDocs(tree.Paths())
	for _, m := range []string{"GET", "POST", "PUT", "DELETE"} {
		if !strings.Contains(docs, "- **"+m+"**") {
			t.Errorf("docs missing %s", m)
		}
	}

	methods := ClientMethods(tree)
	if len(methods) != 2 {
		t.Fatalf("ClientMethods() = %+v, want 2 methods", methods)
	}
	if methods[0].Method != "GET" || methods[1].Method != "POST" {
		t.Errorf("ClientMethods() = %+v, want GET then POST", methods)
	}
}

func TestGenerateOpenAPI(t *testing.T) {
	tree := apiTree(t, map[string]string{
		"user.go":         userRoute,
		"status.go":       statusRoute,
		"order/detail.go": "package order\n\n// router.delete(\n",
	})

	doc, err := GenerateOpenAPI(context.Background(), tree, Info{
		Title:   "test-api",
		BaseURL: "http://api.test",
	})
	if err != nil {
		t.Fatalf("GenerateOpenAPI error: %v", err)
	}

	if doc.Info.Title != "test-api" || doc.Info.Version != "1.0.0" {
		t.Errorf("Info = %+v", doc.Info)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "http://api.test" {
		t.Errorf("Servers = %+v", doc.Servers)
	}
	if doc.Paths.Len() != 3 {
		t.Fatalf("got %d paths, want 3", doc.Paths.Len())
	}

	user := doc.Paths.Value("/user")
	if user == nil {
		t.Fatal("missing /user path")
	}
	if user.Get == nil || user.Post == nil {
		t.Fatal("/user should have GET and POST operations")
	}
	if user.Put != nil || user.Delete != nil {
		t.Error("/user should not have PUT or DELETE operations")
	}
	if user.Get.OperationID != "_user_get" {
		t.Errorf("OperationID = %q, want _user_get", user.Get.OperationID)
	}
	if user.Get.Summary != "Fetch data from /user" {
		t.Errorf("Summary = %q", user.Get.Summary)
	}

	detail := doc.Paths.Value("/order/detail")
	if detail == nil || detail.Delete == nil {
		t.Fatal("/order/detail should have a DELETE operation")
	}
	if len(detail.Delete.Tags) != 1 || detail.Delete.Tags[0] != "order" {
		t.Errorf("Tags = %v, want [order]", detail.Delete.Tags)
	}

	if status := doc.Paths.Value("/status"); status == nil || len(status.Operations()) != 0 {
		t.Error("/status should be present with no operations")
	}
}

func TestGenerateOpenAPIPathParameters(t *testing.T) {
	tree := apiTree(t, map[string]string{
		"user/{id}.go":           "package user\n\n// router.get(\n",
		"{org}/{repo:[a-z]+}.go": "package repo\n\n// router.put(\n",
	})

	doc, err := GenerateOpenAPI(context.Background(), tree, Info{})
	if err != nil {
		t.Fatalf("GenerateOpenAPI error: %v", err)
	}

	tests := []struct {
		path   string
		params []string
	}{
		{"/user/{id}", []string{"id"}},
		{"/{org}/{repo}", []string{"org", "repo"}},
	}

	for _, tt := range tests {
		item := doc.Paths.Value(tt.path)
		if item == nil {
			t.Errorf("missing path %s", tt.path)
			continue
		}
		if len(item.Parameters) != len(tt.params) {
			t.Errorf("%s has %d parameters, want %d", tt.path, len(item.Parameters), len(tt.params))
			continue
		}
		for i, name := range tt.params {
			p := item.Parameters[i].Value
			if p.Name != name || p.In != openapi3.ParameterInPath || !p.Required {
				t.Errorf("%s parameter %d = %+v, want required path parameter %q", tt.path, i, p, name)
			}
		}
	}

	if op := doc.Paths.Value("/{org}/{repo}").Put; op == nil || len(op.Tags) != 0 {
		t.Errorf("/{org}/{repo} PUT = %+v, want an untagged operation", op)
	}
}

func TestRenderTree(t *testing.T) {
	tree := apiTree(t, map[string]string{
		"user.go":             userRoute,
		"order/detail.go":     "package order\n",
		"order/items/list.go": "package items\n",
	})

	var buf bytes.Buffer
	if err := RenderTree(&buf, "api", tree); err != nil {
		t.Fatalf("RenderTree error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "api\n") {
		t.Errorf("tree should start with the root name:\n%s", out)
	}
	for _, want := range []string{"order", "detail", "items", "list", "user [GET POST]"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "order") != 1 {
		t.Errorf("directory node should appear once:\n%s", out)
	}
}
