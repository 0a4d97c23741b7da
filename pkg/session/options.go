package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Provider
type Option func(*Provider)

// WithConfig sets custom configuration
func WithConfig(cfg Config) Option {
	return func(p *Provider) {
		p.coord.appName = cfg.ApplicationName
		p.coord.timeout = cfg.Timeout
	}
}

// WithApplicationName sets the application name used to partition records
func WithApplicationName(name string) Option {
	return func(p *Provider) {
		p.coord.appName = name
	}
}

// WithTimeout sets the session timeout
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) {
		p.coord.timeout = timeout
	}
}

// WithCodec sets a custom payload codec
func WithCodec(codec Codec) Option {
	return func(p *Provider) {
		p.codec = codec
	}
}

// WithLogger sets the logger used for expiry cleanup and lost-lock reporting
func WithLogger(log *slog.Logger) Option {
	return func(p *Provider) {
		p.coord.log = log
	}
}
