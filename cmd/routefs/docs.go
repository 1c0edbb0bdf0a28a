package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routefs/internal/gen"
)

func generateDocsCmd(a *app) *cobra.Command {
	var (
		output string
		target string
	)

	cmd := &cobra.Command{
		Use:   "generate-docs",
		Short: "Generate Markdown API documentation",
		Long: `Scan the API directory and write API_DOCS.md with one section per
route.

Every route lists GET, POST, PUT and DELETE, whatever the route file
registers. Use export-routes or openapi for inferred methods.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateDocs(cmd.Context(), a, output, target)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: API_DOCS.md)")
	cmd.Flags().StringVar(&target, "publish", "", "Publish target: a directory or s3://bucket/prefix")

	return cmd
}

func runGenerateDocs(ctx context.Context, a *app, output, target string) error {
	tree, cfg, err := a.discover()
	if err != nil {
		return err
	}

	if output == "" {
		output = cfg.DocsPath()
	}

	docs := gen.GenerateDocs(tree.Paths())
	loc, err := publishArtifact(ctx, cfg, target, output, []byte(docs))
	if err != nil {
		return err
	}

	success("%s generated successfully.", filepath.Base(output))
	info("%s", displayPath(loc))
	return nil
}
