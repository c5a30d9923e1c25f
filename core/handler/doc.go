// Package handler adapts plain functions into dispatchable services.
//
// A handler function takes the request plus zero or more typed trailing
// arguments and returns a response. The adapter owns the glue between the
// two worlds: it runs one extractor per declared argument against the mutable
// request, left to right, and then invokes the function with the request and
// the extracted values. Handler authors never parse the request by hand and
// never see the extraction order logic.
//
//	hello := handler.New(func(ctx context.Context, r *http.Request) (*http.Response, error) {
//		return response.Text("Hello, world!"), nil
//	})
//
//	greet := handler.New1(userID, func(ctx context.Context, r *http.Request, user UserID) (*http.Response, error) {
//		return response.Text("Hello, " + string(user) + "!"), nil
//	})
//
// Internally every handler, whatever its arity, dispatches the same way:
// Call walks an ordered sequence of boxed extraction steps and then invokes
// the function. The typed constructors only describe the function's shape, so
// supporting another arity means adding a constructor, not new dispatch code.
package handler
