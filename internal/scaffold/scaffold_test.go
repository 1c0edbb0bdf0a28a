package scaffold

import (
	"encoding/json"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/routefs/pkg/routes"
)

func TestScaffold(t *testing.T) {
	dir := t.TempDir()

	files, err := Scaffold("test-app", dir, DefaultTemplates(), Data{})
	if err != nil {
		t.Fatalf("Scaffold error: %v", err)
	}

	want := []string{"api/router.go", "api/user.go", "go.mod", "main.go", "routefs.json"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}

	projectDir := filepath.Join(dir, "test-app")
	for _, rel := range want {
		if _, err := os.Stat(filepath.Join(projectDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}

	gomod, _ := os.ReadFile(filepath.Join(projectDir, "go.mod"))
	if !strings.HasPrefix(string(gomod), "module test-app\n") {
		t.Errorf("go.mod should declare module test-app:\n%s", gomod)
	}

	mainGo, _ := os.ReadFile(filepath.Join(projectDir, "main.go"))
	for _, want := range []string{`"test-app/api"`, `port = "3000"`, "test-app running on", "api.LoadRoutes(app)"} {
		if !strings.Contains(string(mainGo), want) {
			t.Errorf("main.go missing %q", want)
		}
	}
}

func TestScaffoldGoFilesParse(t *testing.T) {
	dir := t.TempDir()
	files, err := Scaffold("parse-app", dir, DefaultTemplates(), Data{ModulePath: "github.com/test/parse-app", Port: 8080})
	if err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()
	for _, rel := range files {
		if !strings.HasSuffix(rel, ".go") {
			continue
		}
		full := filepath.Join(dir, "parse-app", filepath.FromSlash(rel))
		if _, err := parser.ParseFile(fset, full, nil, 0); err != nil {
			t.Errorf("%s does not parse: %v", rel, err)
		}
	}
}

func TestScaffoldConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := Scaffold("cfg-app", dir, DefaultTemplates(), Data{Port: 8080}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cfg-app", "routefs.json"))
	if err != nil {
		t.Fatal(err)
	}

	var cfg struct {
		Name   string `json:"name"`
		Port   int    `json:"port"`
		Client struct {
			BaseURL string `json:"baseURL"`
		} `json:"client"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("routefs.json is not valid JSON: %v", err)
	}
	if cfg.Name != "cfg-app" || cfg.Port != 8080 || cfg.Client.BaseURL != "http://localhost:8080" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestScaffoldExampleRoute(t *testing.T) {
	dir := t.TempDir()
	if _, err := Scaffold("route-app", dir, DefaultTemplates(), Data{}); err != nil {
		t.Fatal(err)
	}

	apiDir := filepath.Join(dir, "route-app", "api")
	tree, err := routes.Discover(apiDir)
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.Paths(); !reflect.DeepEqual(got, []string{"/user"}) {
		t.Errorf("Paths() = %v, want [/user]", got)
	}

	methods := routes.InferMethods(filepath.Join(apiDir, "user.go"))
	if !reflect.DeepEqual(methods, []string{"GET"}) {
		t.Errorf("InferMethods(user.go) = %v, want [GET]", methods)
	}
}

func TestScaffoldAlreadyExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "taken")
	if err := os.Mkdir(existing, 0755); err != nil {
		t.Fatal(err)
	}

	files, err := Scaffold("taken", dir, DefaultTemplates(), Data{})
	var exists *AlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("Scaffold error = %v, want *AlreadyExistsError", err)
	}
	if exists.Path != existing {
		t.Errorf("Path = %q, want %q", exists.Path, existing)
	}
	if len(files) != 0 {
		t.Errorf("files = %v, want none", files)
	}

	entries, _ := os.ReadDir(existing)
	if len(entries) != 0 {
		t.Errorf("existing folder was modified: %v", entries)
	}
}

func TestScaffoldInvalidName(t *testing.T) {
	for _, name := range []string{"", "my app", "a/b", "1app", ".."} {
		if _, err := Scaffold(name, t.TempDir(), DefaultTemplates(), Data{}); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Scaffold(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestScaffoldBrokenTemplateWritesNothing(t *testing.T) {
	dir := t.TempDir()
	set := TemplateSet{
		"a.txt": "ok",
		"b.txt": "{{.Missing",
	}

	if _, err := Scaffold("broken", dir, set, Data{}); err == nil {
		t.Fatal("Expected error for broken template")
	}
	if _, err := os.Stat(filepath.Join(dir, "broken")); !os.IsNotExist(err) {
		t.Error("project folder should not be created when a template fails")
	}
}

func TestDefaultTemplatesIsCopy(t *testing.T) {
	set := DefaultTemplates()
	delete(set, "main.go")

	if _, ok := DefaultTemplates()["main.go"]; !ok {
		t.Error("DefaultTemplates() should return a fresh set")
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"my-api-project", true},
		{"api2", true},
		{"", false},
		{"my api", false},
		{"a\\b", false},
		{"2fast", false},
	}

	for _, tt := range tests {
		if got := ValidName(tt.name); got != tt.want {
			t.Errorf("ValidName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
