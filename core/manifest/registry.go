package manifest

import (
	"fmt"

	"github.com/dmitrymomot/dispatch/core/route"
	"github.com/dmitrymomot/dispatch/core/service"
)

// Registry maps manifest handler names to dispatchable units.
type Registry map[string]service.Service

// Build resolves every handler name through reg and produces a Router
// whose entries follow manifest order. The Config must have passed
// Validate, which Parse and Load guarantee. An absent fallback leaves the
// router's default in place, answering unmatched requests with 404.
func (c *Config) Build(reg Registry) (*route.Router, error) {
	router := route.NewRouter()

	for i, r := range c.Routes {
		svc, ok := reg[r.Handler]
		if !ok || svc == nil {
			return nil, fmt.Errorf("%w: %q (route %d)", ErrUnknownHandler, r.Handler, i)
		}
		router.Handle(r.Method, r.Path, svc)
	}

	if c.Fallback != "" {
		svc, ok := reg[c.Fallback]
		if !ok || svc == nil {
			return nil, fmt.Errorf("%w: fallback %q", ErrUnknownHandler, c.Fallback)
		}
		router.Fallback(svc)
	}

	return router, nil
}
