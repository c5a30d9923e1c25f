// Package extract converts parts of an in-flight request into strongly-typed
// handler arguments.
//
// An Extractor is a typed function over the mutable request. Handlers declare
// one extractor per argument; the dispatch layer runs them strictly left to
// right, so an extractor may consume headers or body segments before the next
// one sees the request. For a given request no two extractions ever run
// concurrently.
//
// Extraction is fallible: an extractor that returns an error stops dispatch
// before the handler body runs, and the error propagates unchanged. Extractors
// with a sensible default, like Header, report absence as the default value
// instead of an error.
//
// Defining a request-derived type outside this package takes one function:
//
//	type UserID string
//
//	func userID(ctx context.Context, r *http.Request) (UserID, error) {
//		id, err := extract.Header("x-user-id", "guest")(ctx, r)
//		return UserID(id), err
//	}
package extract
