package server

import "errors"

var (
	// ErrServerAlreadyRunning is returned when Start is called on a running server.
	ErrServerAlreadyRunning = errors.New("server is already running")
	// ErrMissingAddress is returned when no listen address is provided.
	ErrMissingAddress = errors.New("server address is required")
)
