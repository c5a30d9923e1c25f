package extract

import (
	"context"
	"net/http"
)

// Extractor produces a typed value from the in-flight request.
//
// Extractors run sequentially in the order a handler declares them and may
// mutate the shared request. A returned error short-circuits dispatch before
// the handler body executes.
type Extractor[T any] func(ctx context.Context, r *http.Request) (T, error)

// Value adapts a fixed value into an Extractor, ignoring the request.
// Useful for tests and for threading configuration into handlers.
func Value[T any](v T) Extractor[T] {
	return func(context.Context, *http.Request) (T, error) {
		return v, nil
	}
}
