package route

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/service"
)

// Route pairs a handler with a Spec and a fallback. It is itself a Service:
// a matching request dispatches to the handler, any other request to the
// fallback, so a Route never leaves a request unanswered.
type Route struct {
	spec     Spec
	handler  service.Service
	fallback service.Service
}

// New builds a Route. A nil fallback defaults to the terminal NotFound unit,
// keeping the chain response-guaranteed.
func New(spec Spec, handler service.Service, fallback service.Service) *Route {
	if fallback == nil {
		fallback = service.NotFound{}
	}
	return &Route{spec: spec, handler: handler, fallback: fallback}
}

// Spec returns the route's matching key.
func (rt *Route) Spec() Spec { return rt.spec }

// Ready always reports ready; readiness of the underlying units is checked
// at dispatch time, once the target is known.
func (rt *Route) Ready() error { return nil }

// Call dispatches to the handler when the spec matches, to the fallback
// otherwise.
func (rt *Route) Call(ctx context.Context, req *http.Request) (*http.Response, error) {
	next := rt.fallback
	if rt.spec.Matches(req) {
		next = rt.handler
	}
	return service.Dispatch(ctx, next, req)
}

// Clone returns a per-request copy sharing the immutable spec and units.
func (rt *Route) Clone() service.Service {
	c := *rt
	return &c
}
