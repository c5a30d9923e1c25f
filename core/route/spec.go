package route

import (
	"bytes"
	"net/http"
)

// Spec is an exact (method, path) matching key. The path is held as raw
// bytes and compared byte-for-byte against the escaped request path: no
// percent-decoding, no trailing-slash normalization, no wildcards. The query
// string never participates in matching.
type Spec struct {
	Method string
	Path   []byte
}

// NewSpec builds a Spec from a method and a literal path.
func NewSpec(method, path string) Spec {
	return Spec{Method: method, Path: []byte(path)}
}

// Matches reports whether the request's method and escaped path equal the
// spec exactly. Method comparison is case-sensitive.
func (s Spec) Matches(r *http.Request) bool {
	return r.Method == s.Method && bytes.Equal([]byte(r.URL.EscapedPath()), s.Path)
}

// String renders the spec as "METHOD /path" for logs and route listings.
func (s Spec) String() string {
	return s.Method + " " + string(s.Path)
}
