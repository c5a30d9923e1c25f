// Package bridge adapts an App to the net/http server surface.
//
// The dispatch core works on *http.Request in and *http.Response out and
// never touches a ResponseWriter. Bridge is the boundary piece that does:
// it implements http.Handler, feeds each ingress request through the App,
// and writes the returned response to the wire.
//
//	a := app.New(app.WithService(router))
//	http.ListenAndServe(":8080", bridge.New(a, bridge.WithLogger(log)))
//
// Every request is stamped with an ID: an incoming X-Request-ID header is
// reused, otherwise a UUID is generated. The ID is visible to handlers on
// the request and echoed on the response.
//
// A dispatch error never reaches the client as-is. The bridge logs it and
// answers with a plain 500, since the core deliberately leaves failure
// rendering to its transport.
package bridge
