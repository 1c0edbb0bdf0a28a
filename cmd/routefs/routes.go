package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routefs/internal/gen"
	"github.com/vango-dev/routefs/pkg/routes"
)

func routesCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route tree",
		Long: `Scan the API directory and print the discovered routes as a tree,
with the HTTP methods found in each route file.

With --check every Go route file is parsed and the first syntax error is
reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(a, check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Parse every route file")

	return cmd
}

func runRoutes(a *app, check bool) error {
	tree, cfg, err := a.discover()
	if err != nil {
		return err
	}

	if check {
		if err := routes.CheckSyntax(tree); err != nil {
			return err
		}
	}

	if err := gen.RenderTree(os.Stdout, filepath.Base(a.apiDir(cfg)), tree); err != nil {
		return err
	}

	success("%d routes", len(tree.Files()))
	return nil
}
