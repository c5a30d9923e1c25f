package service

import (
	"context"
	"net/http"
)

// Service is a dispatchable unit: it consumes a request and produces a
// response or an error.
//
// Requests are mutable through the pipeline: a unit may drain headers or
// body segments before delegating. Responses are constructed fresh per
// call, never reused.
type Service interface {
	// Ready reports whether the unit can currently accept a call without
	// blocking. A nil return means ready. Call must not be invoked before a
	// Ready check on the same per-request instance returns nil.
	Ready() error

	// Call consumes the request and produces a response. Errors propagate
	// unchanged to the caller; no unit recovers or remaps them.
	Call(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Cloner is implemented by services that carry per-request mutable state.
// Clone returns an instance private to one request. Services without the
// method are treated as immutable and shared across requests.
type Cloner interface {
	Clone() Service
}

// PerRequest returns the instance a single request should dispatch through:
// a clone when svc implements Cloner, svc itself otherwise.
func PerRequest(svc Service) Service {
	if c, ok := svc.(Cloner); ok {
		return c.Clone()
	}
	return svc
}

// Dispatch runs the readiness-then-call sequence against a per-request
// instance of svc. A non-nil readiness error is returned unchanged and the
// call is never made.
func Dispatch(ctx context.Context, svc Service, req *http.Request) (*http.Response, error) {
	inst := PerRequest(svc)
	if err := inst.Ready(); err != nil {
		return nil, err
	}
	return inst.Call(ctx, req)
}
