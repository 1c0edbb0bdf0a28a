package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routefs/internal/errors"
	"github.com/vango-dev/routefs/internal/gen"
)

func openapiCmd(a *app) *cobra.Command {
	var (
		output string
		target string
	)

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Generate an OpenAPI 3.0 document",
		Long: `Scan the API directory and write an OpenAPI document with one path per
route and one operation per HTTP method found in the route file.

Operation IDs match the method names of the export-routes client.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpenAPI(cmd.Context(), a, output, target)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: openapi.json)")
	cmd.Flags().StringVar(&target, "publish", "", "Publish target: a directory or s3://bucket/prefix")

	return cmd
}

func runOpenAPI(ctx context.Context, a *app, output, target string) error {
	tree, cfg, err := a.discover()
	if err != nil {
		return err
	}

	if output == "" {
		output = cfg.OpenAPIPath()
	}

	doc, err := gen.GenerateOpenAPI(ctx, tree, gen.Info{
		Title:   cfg.OpenAPI.Title,
		Version: cfg.OpenAPI.Version,
		BaseURL: cfg.Client.BaseURL,
	})
	if err != nil {
		return errors.New("E160").Wrap(err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.New("E160").Wrap(err)
	}
	data = append(data, '\n')

	loc, err := publishArtifact(ctx, cfg, target, output, data)
	if err != nil {
		return err
	}

	success("OpenAPI document generated at %s", displayPath(loc))
	info("%d paths", doc.Paths.Len())
	return nil
}
