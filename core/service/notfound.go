package service

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/response"
)

// NotFound is the terminal fallback unit. It is always ready and answers
// every request with 404 Not Found, an empty body, and no custom headers.
//
// NotFound is the base case of dispatch composition: a chain that ends in it
// is guaranteed to produce a response, so dispatch never falls through.
// The zero value is ready to use and safe to share.
type NotFound struct{}

// Ready always reports ready.
func (NotFound) Ready() error { return nil }

// Call ignores the request and synthesizes a fresh 404 response.
func (NotFound) Call(_ context.Context, _ *http.Request) (*http.Response, error) {
	return response.NotFound(), nil
}
