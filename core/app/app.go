package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/service"
)

// Option configures an App during construction.
type Option func(*App)

// WithService sets the unit the app dispatches every request to, typically
// a *route.Router. Defaults to service.NotFound.
func WithService(svc service.Service) Option {
	return func(a *App) {
		if svc != nil {
			a.svc = svc
		}
	}
}

// WithLogger sets the logger for dispatch diagnostics. Defaults to a
// discarding logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// App is the composition root. It holds one dispatchable unit and drives
// the per-request clone, readiness check, call sequence for it on every
// request. An App is immutable after New.
type App struct {
	svc service.Service
	log *slog.Logger
}

// New builds an App. Without options it holds service.NotFound, so every
// request is answered with an empty 404.
func New(opts ...Option) *App {
	a := &App{
		svc: service.NotFound{},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ready reports whether the app accepts calls. The app itself is always
// ready; the held unit's readiness is checked per request inside Call.
func (a *App) Ready() error { return nil }

// Call dispatches req through the held unit and returns its outcome
// unchanged. Errors are not translated into responses here; transport
// adapters decide what a failed dispatch looks like on the wire.
func (a *App) Call(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := service.Dispatch(ctx, a.svc, req)
	if err != nil {
		a.log.DebugContext(ctx, "dispatch failed",
			logger.Method(req.Method),
			logger.Path(req.URL.Path),
			logger.Error(err),
			logger.Elapsed(start),
		)
		return nil, err
	}

	a.log.DebugContext(ctx, "request dispatched",
		logger.Method(req.Method),
		logger.Path(req.URL.Path),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start),
	)
	return resp, nil
}
