package logger

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	output io.Writer
	level  slog.Leveler
	json   bool
	attrs  []slog.Attr
}

// Option configures the logger produced by New.
type Option func(*config)

// WithOutput directs records to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithLevel sets the minimum record level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Leveler) Option {
	return func(c *config) { c.level = level }
}

// WithJSON switches output to JSON records. Text is the default.
func WithJSON() Option {
	return func(c *config) { c.json = true }
}

// WithAttrs attaches attrs to every record the logger emits.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// New builds a *slog.Logger. With no options it writes text records at
// info level to os.Stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		output: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var h slog.Handler
	if cfg.json {
		h = slog.NewJSONHandler(cfg.output, &slog.HandlerOptions{Level: cfg.level})
	} else {
		h = slog.NewTextHandler(cfg.output, &slog.HandlerOptions{Level: cfg.level})
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	return slog.New(h)
}
