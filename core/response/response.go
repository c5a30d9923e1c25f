package response

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
)

// New creates an empty response with the given status code.
// The header map is initialized and the body is http.NoBody.
func New(status int) *http.Response {
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		Status:     strconv.Itoa(status) + " " + http.StatusText(status),
		StatusCode: status,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
		Body:       http.NoBody,
	}
}

// Text creates a text/plain response with 200 OK status.
func Text(content string) *http.Response {
	return TextWithStatus(content, http.StatusOK)
}

// TextWithStatus creates a text/plain response with custom status code.
func TextWithStatus(content string, status int) *http.Response {
	resp := New(status)
	resp.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if content != "" {
		setBody(resp, []byte(content))
	}
	return resp
}

// Bytes creates a response with custom content type and 200 OK status.
func Bytes(content []byte, contentType string) *http.Response {
	return BytesWithStatus(content, contentType, http.StatusOK)
}

// BytesWithStatus creates a response with custom content type and status code.
func BytesWithStatus(content []byte, contentType string, status int) *http.Response {
	resp := New(status)
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if len(content) > 0 {
		setBody(resp, content)
	}
	return resp
}

// Status creates an empty response with the specified status code.
func Status(code int) *http.Response {
	return New(code)
}

// NoContent creates a 204 No Content response.
func NoContent() *http.Response {
	return New(http.StatusNoContent)
}

// NotFound creates a 404 Not Found response with empty body and no headers.
func NotFound() *http.Response {
	return New(http.StatusNotFound)
}

// setBody attaches content to resp and records its length.
func setBody(resp *http.Response, content []byte) {
	resp.Body = io.NopCloser(bytes.NewReader(content))
	resp.ContentLength = int64(len(content))
}
