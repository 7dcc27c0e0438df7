package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")
)

// Grid configuration and evaluation errors
var (
	// ErrConfiguration covers malformed column specs, missing class definitions and
	// missing join coordinates. It is never retried.
	ErrConfiguration = errors.Wrap(BadParameterError, "grid configuration error")

	// ErrResolution is returned when an attribute lookup is attempted with a
	// structurally invalid column spec. An absent value is not a resolution error.
	ErrResolution = errors.New("grid value resolution error")

	// ErrAttributeNotFound is returned by elements that do not carry the requested attribute.
	ErrAttributeNotFound = errors.Wrap(NotFoundError, "attribute not found")

	ErrUndefinedOperator = errors.Wrap(ErrConfiguration, "undefined grid operator")
)

func ConfigurationError(format string, args ...any) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

func ResolutionError(format string, args ...any) error {
	return errors.Wrapf(ErrResolution, format, args...)
}
