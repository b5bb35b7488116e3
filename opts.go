package archivator

import (
	"io"
	"log/slog"
)

// Option configures Archive, Unarchive, and Equivalent.
type Option func(*config)

type config struct {
	logger *slog.Logger
	force  bool
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// log returns the logger, falling back to a discard logger if nil.
func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.logger
}

// WithLogger sets the logger for operation progress and per-file skip
// warnings. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithForce skips the equivalence pre-check in Archive and always
// rewrites the archive.
func WithForce() Option {
	return func(c *config) {
		c.force = true
	}
}
