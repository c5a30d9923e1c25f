package response_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/response"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "simple_string",
			content:  "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "empty_string",
			content:  "",
			expected: "",
		},
		{
			name:     "multiline_string",
			content:  "Line 1\nLine 2\nLine 3",
			expected: "Line 1\nLine 2\nLine 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := response.Text(tt.content)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(body))
			assert.NoError(t, resp.Body.Close())
		})
	}
}

func TestTextWithStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		statusCode int
		expected   int
	}{
		{
			name:       "created_status",
			content:    "Resource created",
			statusCode: http.StatusCreated,
			expected:   http.StatusCreated,
		},
		{
			name:       "bad_request_status",
			content:    "Invalid input",
			statusCode: http.StatusBadRequest,
			expected:   http.StatusBadRequest,
		},
		{
			name:       "zero_status_defaults_to_ok",
			content:    "Default status",
			statusCode: 0,
			expected:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := response.TextWithStatus(tt.content, tt.statusCode)

			assert.Equal(t, tt.expected, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(body))
		})
	}
}

func TestBytes(t *testing.T) {
	t.Parallel()

	t.Run("content_with_type", func(t *testing.T) {
		t.Parallel()

		content := []byte(`{"ok":true}`)
		resp := response.Bytes(content, "application/json")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.Equal(t, int64(len(content)), resp.ContentLength)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, content, body)
	})

	t.Run("empty_content_keeps_no_body", func(t *testing.T) {
		t.Parallel()

		resp := response.Bytes(nil, "application/octet-stream")

		assert.Equal(t, http.NoBody, resp.Body)
		assert.Zero(t, resp.ContentLength)
	})

	t.Run("empty_content_type_sets_no_header", func(t *testing.T) {
		t.Parallel()

		resp := response.Bytes([]byte("data"), "")

		assert.Empty(t, resp.Header.Get("Content-Type"))
	})
}

func TestStatus(t *testing.T) {
	t.Parallel()

	t.Run("custom_code", func(t *testing.T) {
		t.Parallel()

		resp := response.Status(http.StatusTeapot)

		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
		assert.Equal(t, http.NoBody, resp.Body)
		assert.Empty(t, resp.Header)
	})

	t.Run("zero_defaults_to_ok", func(t *testing.T) {
		t.Parallel()

		resp := response.Status(0)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	resp := response.NoContent()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, http.NoBody, resp.Body)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	resp := response.NotFound()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.NoBody, resp.Body)
	assert.Empty(t, resp.Header, "not found carries no custom headers")
	assert.NotNil(t, resp.Header, "header map is initialized")
}

func TestResponsesAreFreshValues(t *testing.T) {
	t.Parallel()

	first := response.NotFound()
	second := response.NotFound()

	require.NotSame(t, first, second)

	first.Header.Set("X-Test", "mutated")
	assert.Empty(t, second.Header.Get("X-Test"))
}
