package manifest

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Route describes a single HTTP route.
type Route struct {
	Method  string `toml:"method"`
	Path    string `toml:"path"`
	Handler string `toml:"handler"`
}

// Config is the top-level manifest: an ordered route table plus an
// optional fallback handler name.
type Config struct {
	Routes   []Route `toml:"route"`
	Fallback string  `toml:"fallback"`
}

// Parse decodes and validates a TOML manifest.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads, decodes, and validates a TOML manifest file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Validate normalizes every route in place and rejects tables the router
// could not serve unambiguously.
func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return ErrNoRoutes
	}

	seen := make(map[string]struct{}, len(c.Routes))
	for i := range c.Routes {
		if err := c.Routes[i].normalize(); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
		key := c.Routes[i].Method + " " + c.Routes[i].Path
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

var standardMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// normalize uppercases the method and checks the fields. The path is
// deliberately not cleaned: matching is byte-exact, so "/a//b" and "/a/b"
// are different routes and the manifest must say which one it means.
func (r *Route) normalize() error {
	if strings.TrimSpace(r.Handler) == "" {
		return ErrMissingHandler
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, r.Path)
	}

	r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
	if r.Method == "" {
		r.Method = http.MethodGet
	}
	if _, ok := standardMethods[r.Method]; !ok {
		return fmt.Errorf("%w: %s", ErrInvalidMethod, r.Method)
	}
	return nil
}
