// Package manifest loads declarative route tables from TOML documents and
// binds them to named services.
//
// A manifest names a handler per route and, optionally, a fallback for
// requests no route matches:
//
//	fallback = "not_found"
//
//	[[route]]
//	method = "GET"
//	path = "/hello"
//	handler = "hello"
//
//	[[route]]
//	method = "POST"
//	path = "/things"
//	handler = "create_thing"
//
// Handler names are resolved through a Registry, and Build produces a
// Router matching in manifest order:
//
//	cfg, err := manifest.Load("routes.toml")
//	router, err := cfg.Build(manifest.Registry{
//		"hello":        helloHandler,
//		"create_thing": createThing,
//		"not_found":    service.NotFound{},
//	})
//
// Paths are kept byte-exact: matching is literal, so the manifest is the
// one place to write the escaped form of a path. Methods default to GET
// and are uppercased.
package manifest
