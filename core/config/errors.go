package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil destination pointer.
	ErrNilConfig = errors.New("config destination must be a non-nil pointer")
	// ErrParseFailed is returned when environment variables cannot be parsed
	// into the destination struct.
	ErrParseFailed = errors.New("failed to parse environment variables")
)
