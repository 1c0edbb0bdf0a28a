package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"
)

// DefaultName is the project name used when none is given.
const DefaultName = "my-api-project"

// DefaultPort is the port generated servers listen on by default.
const DefaultPort = 3000

// ErrInvalidName is returned for project names that cannot be a directory
// and module name.
var ErrInvalidName = errors.New("invalid project name")

// Data contains the template variables.
type Data struct {
	// ProjectName is the name of the project.
	ProjectName string

	// ModulePath is the Go module path.
	ModulePath string

	// Port is the port the generated server listens on.
	Port int
}

// AlreadyExistsError is returned when the project folder already exists.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("project folder already exists: %s", e.Path)
}

// ValidName reports whether name can be used as a project name.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	for i, r := range name {
		if r == ' ' || r == '/' || r == '\\' {
			return false
		}
		if i == 0 && r >= '0' && r <= '9' {
			return false
		}
	}
	return true
}

// Scaffold creates the project directory name under dir and writes every
// file of set into it. It returns the written paths relative to the project
// directory, in write order.
//
// If the project directory exists nothing is written and the error is an
// *AlreadyExistsError. All templates are rendered before anything is
// written, so a broken template leaves no trace. A write failure part way
// through is not rolled back: the files written so far stay on disk and are
// returned along with the error.
func Scaffold(name, dir string, set TemplateSet, data Data) ([]string, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	projectDir := filepath.Join(dir, name)
	if _, err := os.Lstat(projectDir); err == nil {
		return nil, &AlreadyExistsError{Path: projectDir}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	data = data.withDefaults(name)

	rendered, err := set.render(data)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(rendered))
	for _, rel := range set.Files() {
		fullPath := filepath.Join(projectDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return written, err
		}
		if err := os.WriteFile(fullPath, rendered[rel], 0644); err != nil {
			return written, err
		}
		written = append(written, rel)
	}

	return written, nil
}

func (d Data) withDefaults(name string) Data {
	if d.ProjectName == "" {
		d.ProjectName = name
	}
	if d.ModulePath == "" {
		d.ModulePath = d.ProjectName
	}
	if d.Port == 0 {
		d.Port = DefaultPort
	}
	return d
}

// Files returns the file paths of the set in sorted order.
func (s TemplateSet) Files() []string {
	files := make([]string, 0, len(s))
	for rel := range s {
		files = append(files, rel)
	}
	sort.Strings(files)
	return files
}

// render executes every template of the set.
func (s TemplateSet) render(data Data) (map[string][]byte, error) {
	out := make(map[string][]byte, len(s))
	for _, rel := range s.Files() {
		tmpl, err := template.New(rel).Parse(s[rel])
		if err != nil {
			return nil, fmt.Errorf("invalid template %s: %w", rel, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("template execute error %s: %w", rel, err)
		}
		out[rel] = buf.Bytes()
	}
	return out, nil
}
