// Package app provides the composition root of the dispatch pipeline.
//
// An App holds exactly one dispatchable unit, usually a *route.Router, and
// gives callers a single asynchronous entry point. Each Call obtains a
// per-request instance of the unit, checks its readiness, and delegates:
//
//	router := route.NewRouter().
//		Get("/hello", handler.New(hello))
//
//	a := app.New(app.WithService(router))
//	resp, err := a.Call(ctx, req)
//
// An App constructed without options answers every request with 404 Not
// Found. Apps are immutable after New and safe for concurrent use.
package app
