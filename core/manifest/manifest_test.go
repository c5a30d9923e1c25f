package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/manifest"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid_document", func(t *testing.T) {
		t.Parallel()

		cfg, err := manifest.Parse([]byte(`
fallback = "not_found"

[[route]]
method = "GET"
path = "/hello"
handler = "hello"

[[route]]
method = "POST"
path = "/things"
handler = "create_thing"
`))

		require.NoError(t, err)
		assert.Equal(t, "not_found", cfg.Fallback)
		require.Len(t, cfg.Routes, 2)
		assert.Equal(t, manifest.Route{Method: "GET", Path: "/hello", Handler: "hello"}, cfg.Routes[0])
		assert.Equal(t, manifest.Route{Method: "POST", Path: "/things", Handler: "create_thing"}, cfg.Routes[1])
	})

	t.Run("method_defaults_to_get_and_is_uppercased", func(t *testing.T) {
		t.Parallel()

		cfg, err := manifest.Parse([]byte(`
[[route]]
path = "/implicit"
handler = "h"

[[route]]
method = "post"
path = "/lower"
handler = "h"
`))

		require.NoError(t, err)
		assert.Equal(t, "GET", cfg.Routes[0].Method)
		assert.Equal(t, "POST", cfg.Routes[1].Method)
	})

	t.Run("path_is_kept_byte_exact", func(t *testing.T) {
		t.Parallel()

		cfg, err := manifest.Parse([]byte(`
[[route]]
path = "/a//b/"
handler = "h"

[[route]]
path = "/a%20b"
handler = "h"
`))

		require.NoError(t, err)
		assert.Equal(t, "/a//b/", cfg.Routes[0].Path, "path must not be cleaned")
		assert.Equal(t, "/a%20b", cfg.Routes[1].Path)
	})

	t.Run("missing_handler_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Parse([]byte(`
[[route]]
path = "/hello"
`))
		assert.ErrorIs(t, err, manifest.ErrMissingHandler)
	})

	t.Run("relative_path_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Parse([]byte(`
[[route]]
path = "hello"
handler = "h"
`))
		assert.ErrorIs(t, err, manifest.ErrInvalidPath)
	})

	t.Run("non_standard_method_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Parse([]byte(`
[[route]]
method = "FETCH"
path = "/hello"
handler = "h"
`))
		assert.ErrorIs(t, err, manifest.ErrInvalidMethod)
	})

	t.Run("duplicate_route_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Parse([]byte(`
[[route]]
method = "GET"
path = "/hello"
handler = "first"

[[route]]
method = "get"
path = "/hello"
handler = "second"
`))
		assert.ErrorIs(t, err, manifest.ErrDuplicateRoute)
	})

	t.Run("empty_document_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Parse([]byte(""))
		assert.ErrorIs(t, err, manifest.ErrNoRoutes)
	})

	t.Run("malformed_toml_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Parse([]byte(`[[route` + "\n"))
		assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads_manifest_file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "routes.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[[route]]
path = "/hello"
handler = "hello"
`), 0o600))

		cfg, err := manifest.Load(path)
		require.NoError(t, err)
		require.Len(t, cfg.Routes, 1)
		assert.Equal(t, "/hello", cfg.Routes[0].Path)
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
