package route

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/service"
)

// entry binds one spec to one dispatchable unit.
type entry struct {
	spec Spec
	svc  service.Service
}

// Router composes many routes into one Service: an ordered linear scan with
// first-match-wins semantics, ending at a terminal fallback when nothing
// matches. Registration order is priority order.
//
// Compose the table fully before serving; registration is not synchronized
// with dispatch.
type Router struct {
	entries  []entry
	fallback service.Service
}

// NewRouter creates an empty router whose fallback is the terminal NotFound
// unit. An empty router answers every request with 404.
func NewRouter() *Router {
	return &Router{fallback: service.NotFound{}}
}

// Handle binds a service to an exact method and path. It returns the router
// for chaining.
func (ro *Router) Handle(method, path string, svc service.Service) *Router {
	ro.entries = append(ro.entries, entry{spec: NewSpec(method, path), svc: svc})
	return ro
}

// Fallback replaces the unit consulted when no route matches.
func (ro *Router) Fallback(svc service.Service) *Router {
	ro.fallback = svc
	return ro
}

// Get binds a service to GET requests for an exact path.
func (ro *Router) Get(path string, svc service.Service) *Router {
	return ro.Handle(http.MethodGet, path, svc)
}

// Post binds a service to POST requests for an exact path.
func (ro *Router) Post(path string, svc service.Service) *Router {
	return ro.Handle(http.MethodPost, path, svc)
}

// Put binds a service to PUT requests for an exact path.
func (ro *Router) Put(path string, svc service.Service) *Router {
	return ro.Handle(http.MethodPut, path, svc)
}

// Delete binds a service to DELETE requests for an exact path.
func (ro *Router) Delete(path string, svc service.Service) *Router {
	return ro.Handle(http.MethodDelete, path, svc)
}

// Patch binds a service to PATCH requests for an exact path.
func (ro *Router) Patch(path string, svc service.Service) *Router {
	return ro.Handle(http.MethodPatch, path, svc)
}

// Head binds a service to HEAD requests for an exact path.
func (ro *Router) Head(path string, svc service.Service) *Router {
	return ro.Handle(http.MethodHead, path, svc)
}

// Options binds a service to OPTIONS requests for an exact path.
func (ro *Router) Options(path string, svc service.Service) *Router {
	return ro.Handle(http.MethodOptions, path, svc)
}

// Connect binds a service to CONNECT requests for an exact path.
func (ro *Router) Connect(path string, svc service.Service) *Router {
	return ro.Handle(http.MethodConnect, path, svc)
}

// Trace binds a service to TRACE requests for an exact path.
func (ro *Router) Trace(path string, svc service.Service) *Router {
	return ro.Handle(http.MethodTrace, path, svc)
}

// Ready always reports ready; the matched unit's readiness is checked at
// dispatch time.
func (ro *Router) Ready() error { return nil }

// Call scans the table in registration order and dispatches to the first
// unit whose spec matches. When nothing matches, the fallback answers.
func (ro *Router) Call(ctx context.Context, req *http.Request) (*http.Response, error) {
	for _, e := range ro.entries {
		if e.spec.Matches(req) {
			return service.Dispatch(ctx, e.svc, req)
		}
	}
	return service.Dispatch(ctx, ro.fallback, req)
}

// Clone returns a per-request copy sharing the route table, which is
// immutable once serving starts.
func (ro *Router) Clone() service.Service {
	c := *ro
	return &c
}

// Routes lists the registered specs in priority order.
func (ro *Router) Routes() []Spec {
	specs := make([]Spec, len(ro.entries))
	for i, e := range ro.entries {
		specs[i] = e.spec
	}
	return specs
}
