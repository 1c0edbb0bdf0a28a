package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routefs/internal/config"
	"github.com/vango-dev/routefs/internal/errors"
	"github.com/vango-dev/routefs/internal/gen"
	"github.com/vango-dev/routefs/internal/publish"
)

func exportRoutesCmd(a *app) *cobra.Command {
	var (
		output string
		target string
	)

	cmd := &cobra.Command{
		Use:   "export-routes [baseURL]",
		Short: "Generate a JavaScript API client",
		Long: `Scan the API directory and write a JavaScript client with one method
per route and HTTP method found in the route file.

The base URL defaults to client.baseURL from the config, or
http://localhost:3000.

Examples:
  routefs export-routes
  routefs export-routes https://api.example.com
  routefs export-routes --publish s3://my-bucket/clients`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL := ""
			if len(args) == 1 {
				baseURL = args[0]
			}
			return runExportRoutes(cmd.Context(), a, baseURL, output, target)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: apiClient.js)")
	cmd.Flags().StringVar(&target, "publish", "", "Publish target: a directory or s3://bucket/prefix")

	return cmd
}

func runExportRoutes(ctx context.Context, a *app, baseURL, output, target string) error {
	tree, cfg, err := a.discover()
	if err != nil {
		return err
	}

	if baseURL == "" {
		baseURL = cfg.Client.BaseURL
	}
	if output == "" {
		output = cfg.ClientPath()
	}

	if len(gen.ClientMethods(tree)) == 0 {
		warn("No route methods found in %d route files", len(tree.Files()))
	}

	code, err := gen.GenerateClient(tree, baseURL)
	if err != nil {
		return errors.New("E160").Wrap(err)
	}

	loc, err := publishArtifact(ctx, cfg, target, output, []byte(code))
	if err != nil {
		return err
	}

	success("API client generated at %s", displayPath(loc))
	return nil
}

// publishArtifact writes data to output, or to the publish target under
// output's base name. An empty target falls back to publish.target from
// the config.
func publishArtifact(ctx context.Context, cfg *config.Config, target, output string, data []byte) (string, error) {
	if target == "" {
		target = cfg.Publish.Target
	}

	if target == "" {
		loc, err := publish.Dir{Path: filepath.Dir(output)}.Publish(ctx, filepath.Base(output), data)
		if err != nil {
			return "", errors.New("E142").Wrap(err)
		}
		return loc, nil
	}

	pub, err := publish.Open(target, publish.Options{
		Region:   cfg.Publish.Region,
		Endpoint: cfg.Publish.Endpoint,
	})
	if err != nil {
		return "", err
	}

	loc, err := pub.Publish(ctx, filepath.Base(output), data)
	if err != nil {
		return "", errors.New("E150").WithDetail("Target: " + target).Wrap(err)
	}
	return loc, nil
}
