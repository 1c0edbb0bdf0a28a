package routes

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRegistered is wrapped by a LoadError when a discovered route
	// file has no module in the registry.
	ErrNotRegistered = errors.New("no route module registered")

	// ErrInvalidModule is wrapped by a LoadError when a registered module
	// carries neither a handler nor a configure function.
	ErrInvalidModule = errors.New("route module has no handler")

	// ErrInvalidPath is wrapped by a LoadError when a route file name
	// does not form a valid chi pattern.
	ErrInvalidPath = errors.New("invalid route path")
)

// NotFoundError is returned when the routes root is missing or is not a
// directory.
type NotFoundError struct {
	Dir string
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("routes directory %s not found: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("routes directory %s not found", e.Dir)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// LoadError is returned when a route file cannot be loaded during mount.
type LoadError struct {
	// Source is the route file path.
	Source string

	// Path is the logical route path the file maps to.
	Path string

	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading route %s (%s): %v", e.Path, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
