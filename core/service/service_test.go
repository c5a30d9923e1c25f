package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/response"
	"github.com/dmitrymomot/dispatch/core/service"
)

// statelessService is always ready and does not implement Cloner.
type statelessService struct {
	calls int
}

func (s *statelessService) Ready() error { return nil }

func (s *statelessService) Call(ctx context.Context, req *http.Request) (*http.Response, error) {
	s.calls++
	return response.Text("ok"), nil
}

// cloningService hands out a fresh copy per request.
type cloningService struct {
	cloned bool
}

func (s *cloningService) Ready() error { return nil }

func (s *cloningService) Call(ctx context.Context, req *http.Request) (*http.Response, error) {
	return response.Text("cloned"), nil
}

func (s *cloningService) Clone() service.Service {
	c := *s
	c.cloned = true
	return &c
}

// gatedService reports not ready until opened.
type gatedService struct {
	err    error
	called bool
}

func (s *gatedService) Ready() error { return s.err }

func (s *gatedService) Call(ctx context.Context, req *http.Request) (*http.Response, error) {
	s.called = true
	return response.Text("gated"), nil
}

func TestPerRequest(t *testing.T) {
	t.Parallel()

	t.Run("shares_services_without_cloner", func(t *testing.T) {
		t.Parallel()

		svc := &statelessService{}
		assert.Same(t, svc, service.PerRequest(svc))
	})

	t.Run("clones_services_with_cloner", func(t *testing.T) {
		t.Parallel()

		svc := &cloningService{}
		inst := service.PerRequest(svc)

		require.NotSame(t, svc, inst)
		assert.True(t, inst.(*cloningService).cloned)
		assert.False(t, svc.cloned, "the held unit is never mutated")
	})
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	t.Run("ready_then_call", func(t *testing.T) {
		t.Parallel()

		svc := &statelessService{}
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		resp, err := service.Dispatch(context.Background(), svc, req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, svc.calls)
	})

	t.Run("not_ready_short_circuits", func(t *testing.T) {
		t.Parallel()

		notReady := errors.New("connection limit reached")
		svc := &gatedService{err: notReady}
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		resp, err := service.Dispatch(context.Background(), svc, req)

		require.ErrorIs(t, err, notReady)
		assert.Nil(t, resp)
		assert.False(t, svc.called, "call never runs after a failed readiness check")
	})

	t.Run("dispatches_through_the_clone", func(t *testing.T) {
		t.Parallel()

		svc := &cloningService{}
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		resp, err := service.Dispatch(context.Background(), svc, req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.False(t, svc.cloned, "the held unit is never mutated")
	})
}
