package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/routefs/internal/errors"
	"github.com/vango-dev/routefs/pkg/routes"
)

const (
	// ConfigFileName is the name of the default configuration file.
	ConfigFileName = "routefs.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultAPIDir is the default routes directory.
	DefaultAPIDir = "api"

	// DefaultClientOutput is the default generated client file.
	DefaultClientOutput = "apiClient.js"

	// DefaultDocsOutput is the default generated documentation file.
	DefaultDocsOutput = "API_DOCS.md"

	// DefaultOpenAPIOutput is the default generated OpenAPI file.
	DefaultOpenAPIOutput = "openapi.json"
)

// ConfigFileNames are the configuration file names looked up in a project
// directory, in order of preference.
var ConfigFileNames = []string{
	ConfigFileName,
	"routefs.yaml",
	"routefs.yml",
	"routefs.toml",
}

// Config represents a routefs configuration file.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Port is the port the project's server listens on.
	Port int `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty"`

	// Paths contains project directories.
	Paths PathsConfig `json:"paths,omitempty" yaml:"paths,omitempty" toml:"paths,omitempty"`

	// Routes contains route discovery settings.
	Routes RoutesConfig `json:"routes,omitempty" yaml:"routes,omitempty" toml:"routes,omitempty"`

	// Client contains JavaScript client settings.
	Client ClientConfig `json:"client,omitempty" yaml:"client,omitempty" toml:"client,omitempty"`

	// Docs contains Markdown documentation settings.
	Docs DocsConfig `json:"docs,omitempty" yaml:"docs,omitempty" toml:"docs,omitempty"`

	// OpenAPI contains OpenAPI document settings.
	OpenAPI OpenAPIConfig `json:"openapi,omitempty" yaml:"openapi,omitempty" toml:"openapi,omitempty"`

	// Publish contains the default publish target.
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty" toml:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PathsConfig contains path configuration for project directories.
type PathsConfig struct {
	// API is the routes directory.
	API string `json:"api,omitempty" yaml:"api,omitempty" toml:"api,omitempty"`
}

// RoutesConfig contains route discovery settings.
type RoutesConfig struct {
	// Extension is the route file extension (default: ".go").
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty" toml:"extension,omitempty"`

	// Entry is the mount-control file that is never mounted.
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty" toml:"entry,omitempty"`

	// Ignore contains doublestar patterns of files to skip.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty"`
}

// ClientConfig contains JavaScript client settings.
type ClientConfig struct {
	// Output is the generated client file.
	Output string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`

	// BaseURL is the base URL baked into the client.
	BaseURL string `json:"baseURL,omitempty" yaml:"baseURL,omitempty" toml:"baseURL,omitempty"`
}

// DocsConfig contains Markdown documentation settings.
type DocsConfig struct {
	// Output is the generated documentation file.
	Output string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
}

// OpenAPIConfig contains OpenAPI document settings.
type OpenAPIConfig struct {
	Output  string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
}

// PublishConfig contains the default publish target.
type PublishConfig struct {
	// Target is a directory or an s3://bucket/prefix URL.
	Target string `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`

	// Region is the S3 region.
	Region string `json:"region,omitempty" yaml:"region,omitempty" toml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, e.g. for MinIO.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" toml:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the first configuration file of ConfigFileNames found in dir.
func Load(dir string) (*Config, error) {
	path, ok := find(dir)
	if !ok {
		return nil, errors.New("E120").
			WithDetail("No routefs configuration found in " + dir).
			Wrap(fs.ErrNotExist)
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path. The format
// follows the file extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{}
	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return errors.New("E121").
			WithDetail("Cannot read " + filepath.Base(path)).
			WithSuggestion("Rename the file to routefs.json, routefs.yaml or routefs.toml")
	}
	if err != nil {
		return errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check the syntax of " + filepath.Base(path))
	}
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}

	if c.Paths.API == "" {
		c.Paths.API = DefaultAPIDir
	}

	if c.Routes.Extension == "" {
		c.Routes.Extension = routes.DefaultExt
	}
	if c.Routes.Entry == "" {
		c.Routes.Entry = routes.EntryFileFor(c.Routes.Extension)
	}

	if c.Client.Output == "" {
		c.Client.Output = DefaultClientOutput
	}
	if c.Client.BaseURL == "" {
		c.Client.BaseURL = "http://localhost:" + strconv.Itoa(c.Port)
	}

	if c.Docs.Output == "" {
		c.Docs.Output = DefaultDocsOutput
	}

	if c.OpenAPI.Output == "" {
		c.OpenAPI.Output = DefaultOpenAPIOutput
	}
	if c.OpenAPI.Title == "" {
		c.OpenAPI.Title = c.Name
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port " + strconv.Itoa(c.Port) + " is out of range")
	}

	if !strings.HasPrefix(c.Routes.Extension, ".") {
		return errors.New("E123").
			WithDetail("Extension " + strconv.Quote(c.Routes.Extension) + " does not start with a dot")
	}

	if strings.ContainsAny(c.Routes.Entry, `/\`) {
		return errors.New("E120").
			WithDetail("routes.entry must be a file name, got " + strconv.Quote(c.Routes.Entry))
	}

	for _, p := range c.Routes.Ignore {
		if !doublestar.ValidatePattern(p) {
			return errors.New("E102").
				WithDetail("Pattern " + strconv.Quote(p) + " in routes.ignore is not valid")
		}
	}

	return nil
}

// APIPath returns the path to the routes directory, resolved against the
// config file's directory.
func (c *Config) APIPath() string {
	return c.resolve(c.Paths.API)
}

// ClientPath returns the path of the generated client.
func (c *Config) ClientPath() string {
	return c.resolve(c.Client.Output)
}

// DocsPath returns the path of the generated documentation.
func (c *Config) DocsPath() string {
	return c.resolve(c.Docs.Output)
}

// OpenAPIPath returns the path of the generated OpenAPI document.
func (c *Config) OpenAPIPath() string {
	return c.resolve(c.OpenAPI.Output)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// DiscoverOptions returns the route discovery options described by the
// routes section.
func (c *Config) DiscoverOptions() ([]routes.DiscoverOption, error) {
	exclude := []routes.ExcludeFunc{routes.ExcludeName(c.Routes.Entry)}
	if c.Routes.Extension == routes.DefaultExt {
		exclude = append(exclude, routes.ExcludeSuffix("_test.go"))
	}

	if len(c.Routes.Ignore) > 0 {
		ignore, err := routes.ExcludeGlob(c.Routes.Ignore...)
		if err != nil {
			return nil, errors.New("E102").Wrap(err)
		}
		exclude = append(exclude, ignore)
	}

	return []routes.DiscoverOption{
		routes.WithExt(c.Routes.Extension),
		routes.WithExclude(routes.AnyOf(exclude...)),
	}, nil
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, ok := find(dir)
	return ok
}

func find(dir string) (string, bool) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a routefs configuration file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E120").
				WithDetail("No routefs configuration found in " + startDir + " or any parent directory").
				Wrap(fs.ErrNotExist)
		}
		dir = parent
	}
}

// LoadFromDir loads the configuration of the project containing dir. When
// no configuration file exists the defaults are returned, with paths
// relative to the working directory.
func LoadFromDir(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		return New(), nil
	}
	return Load(root)
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFromDir(wd)
}
