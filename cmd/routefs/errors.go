package main

import (
	stderrors "errors"
	"go/scanner"

	"github.com/vango-dev/routefs/internal/errors"
	"github.com/vango-dev/routefs/internal/publish"
	"github.com/vango-dev/routefs/internal/scaffold"
	"github.com/vango-dev/routefs/pkg/routes"
)

// cliError maps the typed errors of the routefs packages to coded errors.
// Coded errors are returned as is; anything unrecognized becomes E143.
func cliError(err error) error {
	var coded *errors.Error
	if stderrors.As(err, &coded) {
		return coded
	}

	var notFound *routes.NotFoundError
	if stderrors.As(err, &notFound) {
		return errors.New("E100").
			WithDetail("Looked for routes in " + notFound.Dir).
			WithSuggestion("Run routefs from the project root, or pass --dir")
	}

	var loadErr *routes.LoadError
	if stderrors.As(err, &loadErr) {
		e := errors.New("E101").Wrap(loadErr.Err)

		var syntax scanner.ErrorList
		if stderrors.As(loadErr.Err, &syntax) && len(syntax) > 0 {
			pos := syntax[0].Pos
			e.WithLocation(pos.Filename, pos.Line, pos.Column)
			e.Wrapped = stderrors.New(syntax[0].Msg)
		} else {
			e.Location = &errors.Location{File: loadErr.Source}
		}

		if stderrors.Is(loadErr.Err, routes.ErrNotRegistered) {
			e.WithSuggestion("Register a route module for " + loadErr.Path + " from an init function in the route file")
		}
		if stderrors.Is(loadErr.Err, routes.ErrInvalidPath) {
			e.WithSuggestion("Rename the route file; '*' is not allowed and '{' '}' must pair up within a name")
		}
		return e
	}

	var exists *scaffold.AlreadyExistsError
	if stderrors.As(err, &exists) {
		return errors.New("E140").
			WithDetail("Directory '" + exists.Path + "' already exists").
			WithSuggestion("Choose a different name or remove the existing directory")
	}

	if stderrors.Is(err, scaffold.ErrInvalidName) {
		return errors.New("E141").
			Wrap(err).
			WithSuggestion("Use letters, numbers and hyphens, not starting with a number")
	}

	if stderrors.Is(err, publish.ErrInvalidTarget) {
		return errors.New("E151").Wrap(err)
	}

	return errors.FromError(err, "E143")
}
