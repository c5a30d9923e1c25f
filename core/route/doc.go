// Package route matches requests against exact (method, path) keys and
// composes matched handlers into dispatchable services.
//
// Matching is deliberately primitive: a Spec matches when the request method
// is equal and the raw path bytes are equal. There is no pattern syntax, no
// percent-decoding, no trailing-slash folding. Anything fancier belongs in a
// different router implementing the same service contract.
//
// A Route guards one handler with one Spec and a fallback. A Router holds an
// ordered table of specs: dispatch scans in registration order and the first
// match wins, so registration order is priority order. A table that matches
// nothing ends at the terminal fallback, which guarantees a response.
//
//	r := route.NewRouter().
//		Get("/hello", hello).
//		Post("/users", createUser)
package route
