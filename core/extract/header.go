package extract

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingHeader indicates a required header was absent from the request.
var ErrMissingHeader = errors.New("missing required header")

// Header returns an extractor for the first value of the named header.
// An absent header is not an error: the extractor yields fallback instead.
func Header(name, fallback string) Extractor[string] {
	return func(_ context.Context, r *http.Request) (string, error) {
		if vs := r.Header.Values(name); len(vs) > 0 {
			return vs[0], nil
		}
		return fallback, nil
	}
}

// HeaderRequired returns an extractor for the first value of the named
// header that fails with ErrMissingHeader when the header is absent,
// stopping dispatch before the handler body runs.
func HeaderRequired(name string) Extractor[string] {
	return func(_ context.Context, r *http.Request) (string, error) {
		if vs := r.Header.Values(name); len(vs) > 0 {
			return vs[0], nil
		}
		return "", fmt.Errorf("%w: %s", ErrMissingHeader, name)
	}
}
