package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routefs/internal/config"
	"github.com/vango-dev/routefs/internal/errors"
	"github.com/vango-dev/routefs/pkg/routes"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds the global flags shared by every command.
type app struct {
	dir        string
	configFile string
	verbose    bool

	cfg *config.Config
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		errors.PrintError(cliError(err), a.verbose)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var (
		port       int
		modulePath string
	)

	rootCmd := &cobra.Command{
		Use:   "routefs [projectName]",
		Short: "File-system routing for chi APIs",
		Long: `routefs mounts the route files of a directory on a chi router and
derives docs and a JavaScript client from the same directory.

Run without a command to create a starter project (default name:
my-api-project).

Examples:
  routefs my-api
  routefs export-routes https://api.example.com
  routefs generate-docs
  routefs routes --check`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(a.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runCreate(name, ".", port, modulePath)
		},
	}

	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Port of the generated server (default 3000)")
	rootCmd.Flags().StringVarP(&modulePath, "module", "m", "", "Go module path (default: project name)")

	rootCmd.PersistentFlags().StringVar(&a.dir, "dir", "", "API directory (default: paths.api from config, or api)")
	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Config file (default: routefs.json found from the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		exportRoutesCmd(a),
		generateDocsCmd(a),
		routesCmd(a),
		openapiCmd(a),
		explainCmd(),
		versionCmd(),
	)

	return rootCmd
}

// setupLogging routes library logs to stderr. Only warnings are shown
// unless verbose is set.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// config loads the project configuration once.
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	var (
		cfg *config.Config
		err error
	)
	if a.configFile != "" {
		cfg, err = config.LoadFile(a.configFile)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}

	a.cfg = cfg
	return cfg, nil
}

// apiDir returns the routes directory: --dir, relative to the working
// directory, or the configured one.
func (a *app) apiDir(cfg *config.Config) string {
	if a.dir != "" {
		return a.dir
	}
	return cfg.APIPath()
}

// discover walks the API directory with the configured options.
func (a *app) discover() (routes.Tree, *config.Config, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, nil, err
	}

	opts, err := cfg.DiscoverOptions()
	if err != nil {
		return nil, nil, err
	}

	dir := a.apiDir(cfg)
	slog.Debug("discovering routes", "dir", dir, "ext", cfg.Routes.Extension)

	tree, err := routes.Discover(dir, opts...)
	if err != nil {
		return nil, nil, err
	}
	return tree, cfg, nil
}

// displayPath shortens path relative to the working directory.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
