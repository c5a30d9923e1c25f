// Package response provides constructors for *http.Response values returned
// by dispatch services.
//
// Responses are plain net/http values: a status code, a header map, and a
// readable body. Every constructor returns a fresh response with a non-nil
// header map and a body that is safe to read and close, so callers can hand
// the value to a transport layer without nil checks.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/dispatch/core/response"
//
//	func hello(ctx context.Context, r *http.Request) (*http.Response, error) {
//		return response.Text("Hello, world!"), nil
//	}
//
// Status-only responses carry http.NoBody and no headers:
//
//	return response.Status(http.StatusAccepted), nil
package response
