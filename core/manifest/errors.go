package manifest

import "errors"

var (
	// ErrInvalidManifest is returned when a document cannot be decoded as TOML.
	ErrInvalidManifest = errors.New("failed to parse manifest")
	// ErrNoRoutes is returned when a manifest defines no routes.
	ErrNoRoutes = errors.New("no routes defined")
	// ErrMissingHandler is returned when a route omits its handler name.
	ErrMissingHandler = errors.New("route handler name is required")
	// ErrInvalidPath is returned when a route path does not begin with '/'.
	ErrInvalidPath = errors.New("route path must begin with '/'")
	// ErrInvalidMethod is returned when a route names a non-standard HTTP method.
	ErrInvalidMethod = errors.New("unsupported HTTP method")
	// ErrDuplicateRoute is returned when two routes share a method and path.
	ErrDuplicateRoute = errors.New("duplicate route")
	// ErrUnknownHandler is returned when a handler name is not in the registry.
	ErrUnknownHandler = errors.New("handler is not registered")
)
