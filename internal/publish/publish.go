// Package publish writes generated artifacts to their destination: a local
// directory or an S3 bucket.
package publish

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidTarget is returned for publish targets that cannot be parsed.
var ErrInvalidTarget = errors.New("invalid publish target")

// Publisher stores a named artifact.
type Publisher interface {
	// Publish stores data under name and returns where it was stored.
	Publish(ctx context.Context, name string, data []byte) (string, error)
}

// Options configures the S3 client created by Open.
type Options struct {
	Region   string
	Endpoint string
}

// Open returns the publisher for target. A target of the form
// s3://bucket/prefix publishes to S3; anything else is a local directory,
// with "" meaning the working directory.
func Open(target string, opts Options) (Publisher, error) {
	if !strings.HasPrefix(target, "s3://") {
		if target == "" {
			target = "."
		}
		return Dir{Path: target}, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no bucket", ErrInvalidTarget, target)
	}

	return &S3{
		Client: NewS3Client(opts.Region, opts.Endpoint),
		Bucket: u.Host,
		Prefix: strings.Trim(u.Path, "/"),
	}, nil
}

// Dir publishes artifacts as files in a local directory.
type Dir struct {
	Path string
}

// Publish writes data to Path/name, creating Path if needed.
func (d Dir) Publish(_ context.Context, name string, data []byte) (string, error) {
	dest := filepath.Join(d.Path, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", err
	}
	return dest, nil
}

var contentTypes = map[string]string{
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".md":   "text/markdown; charset=utf-8",
}

// contentType returns the content type of an artifact by extension.
func contentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
