// Package service defines the contract shared by every dispatchable unit:
// handlers, routers, and fallbacks all expose the same two-phase shape, a
// readiness check followed by a call that turns a request into a response.
//
// The uniform contract is the extension point of the whole engine. Anything
// that implements Service can be held by an app, bound to a route, used as a
// fallback, or wrapped around another Service, without the engine knowing
// which concrete unit it is talking to.
//
// # Readiness
//
// Ready reports whether a unit can accept a call without blocking. Every unit
// in this package is always ready; the check exists so that units with real
// backpressure (a connection-limited router, a pooled backend) can report
// "not yet" through an error without changing the interface. Call must not be
// invoked until Ready on the same per-request instance returns nil. Dispatch
// performs the check-then-call sequence in one step and is how the engine
// itself always invokes a unit:
//
//	resp, err := service.Dispatch(ctx, svc, req)
//
// # Per-request instances
//
// The unit held by a composition root is shared by all requests, so nothing
// may call it in a way that mutates it. Units that keep per-request mutable
// state implement Cloner; PerRequest copies those and shares the rest. The
// rule is: clone, or share immutably, but never share mutably.
package service
