package handler

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/extract"
	"github.com/dmitrymomot/dispatch/core/service"
)

// Func is a handler function with no extracted arguments.
type Func func(ctx context.Context, r *http.Request) (*http.Response, error)

// Func1 is a handler function with one extracted argument.
type Func1[T1 any] func(ctx context.Context, r *http.Request, arg1 T1) (*http.Response, error)

// Func2 is a handler function with two extracted arguments.
type Func2[T1, T2 any] func(ctx context.Context, r *http.Request, arg1 T1, arg2 T2) (*http.Response, error)

// source is one boxed step of a handler's extraction sequence.
type source func(ctx context.Context, r *http.Request) (any, error)

// box erases an extractor's value type so sequences of mixed types can be
// walked uniformly.
func box[T any](ex extract.Extractor[T]) source {
	return func(ctx context.Context, r *http.Request) (any, error) {
		return ex(ctx, r)
	}
}

// Handler adapts a plain function and its extraction sequence into a
// Service. It is immutable after construction and always ready: function
// values carry no pending state.
type Handler struct {
	sources []source
	invoke  func(ctx context.Context, r *http.Request, args []any) (*http.Response, error)
}

// New adapts a zero-argument function. The request passes through to fn
// untouched; no extraction runs.
func New(fn Func) *Handler {
	return &Handler{
		invoke: func(ctx context.Context, r *http.Request, _ []any) (*http.Response, error) {
			return fn(ctx, r)
		},
	}
}

// New1 adapts a one-argument function and the extractor producing its
// argument.
func New1[T1 any](ex1 extract.Extractor[T1], fn Func1[T1]) *Handler {
	return &Handler{
		sources: []source{box(ex1)},
		invoke: func(ctx context.Context, r *http.Request, args []any) (*http.Response, error) {
			return fn(ctx, r, args[0].(T1))
		},
	}
}

// New2 adapts a two-argument function. Extractors run in argument order:
// ex1 before ex2, each seeing any mutation the previous one made.
func New2[T1, T2 any](ex1 extract.Extractor[T1], ex2 extract.Extractor[T2], fn Func2[T1, T2]) *Handler {
	return &Handler{
		sources: []source{box(ex1), box(ex2)},
		invoke: func(ctx context.Context, r *http.Request, args []any) (*http.Response, error) {
			return fn(ctx, r, args[0].(T1), args[1].(T2))
		},
	}
}

// Ready always reports ready.
func (h *Handler) Ready() error { return nil }

// Call runs the extraction sequence in declaration order against the shared
// request, then invokes the underlying function with the extracted values.
// The first extraction error is returned unchanged and the function never
// runs; a function error likewise propagates unchanged.
func (h *Handler) Call(ctx context.Context, r *http.Request) (*http.Response, error) {
	var args []any
	if len(h.sources) > 0 {
		args = make([]any, 0, len(h.sources))
		for _, src := range h.sources {
			v, err := src(ctx, r)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
	}
	return h.invoke(ctx, r, args)
}

// Clone returns a per-request copy. The sequence and function are immutable,
// so the copy is shallow.
func (h *Handler) Clone() service.Service {
	c := *h
	return &c
}
