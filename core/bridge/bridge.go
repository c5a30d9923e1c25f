package bridge

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatch/core/app"
	"github.com/dmitrymomot/dispatch/core/logger"
)

// DefaultRequestIDHeader carries the request ID on both request and
// response unless overridden with WithRequestIDHeader.
const DefaultRequestIDHeader = "X-Request-ID"

// Option configures a Bridge during construction.
type Option func(*Bridge)

// WithLogger sets the logger for request outcomes. Defaults to a
// discarding logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bridge) {
		if log != nil {
			b.log = log
		}
	}
}

// WithRequestIDHeader overrides the header the request ID travels in.
func WithRequestIDHeader(name string) Option {
	return func(b *Bridge) {
		if name != "" {
			b.ridHeader = name
		}
	}
}

// WithRequestIDGenerator overrides the request ID generator. The default
// produces UUID v4 strings.
func WithRequestIDGenerator(fn func() string) Option {
	return func(b *Bridge) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// Bridge is an http.Handler that drives an App: one ServeHTTP call is one
// dispatch. It owns the ResponseWriter so the core never has to.
type Bridge struct {
	app       *app.App
	log       *slog.Logger
	ridHeader string
	newID     func() string
}

// New builds a Bridge over a. A nil a is replaced with a default App, which
// answers every request with 404.
func New(a *app.App, opts ...Option) *Bridge {
	b := &Bridge{
		app:       a,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		ridHeader: DefaultRequestIDHeader,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.app == nil {
		b.app = app.New()
	}
	return b
}

func (b *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	rid := r.Header.Get(b.ridHeader)
	if rid == "" {
		rid = b.newID()
		r.Header.Set(b.ridHeader, rid)
	}

	resp, err := b.app.Call(r.Context(), r)
	if err != nil {
		b.log.ErrorContext(r.Context(), "request failed",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.RequestID(rid),
			logger.Error(err),
			logger.Elapsed(start),
		)
		w.Header().Set(b.ridHeader, rid)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.Header().Set(b.ridHeader, rid)
	w.WriteHeader(resp.StatusCode)

	if resp.Body != nil {
		if _, err := io.Copy(w, resp.Body); err != nil {
			b.log.WarnContext(r.Context(), "failed to write response body",
				logger.RequestID(rid),
				logger.Error(err),
			)
		}
		resp.Body.Close()
	}

	b.log.InfoContext(r.Context(), "request served",
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.StatusCode(resp.StatusCode),
		logger.RequestID(rid),
		logger.Elapsed(start),
	)
}
