package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development debugging.
	FormatText Format = "text"
)

// Config holds logger configuration
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`  // Level is the minimum level that gets logged.
	Format Format     `env:"LOG_FORMAT" envDefault:"json"` // Format selects json or text output.
}

// New creates a slog.Logger writing to stderr with the configured level and
// format. Unknown formats fall back to JSON rather than failing: losing log
// structure is preferable to losing logs.
func New(cfg Config) *slog.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with a custom destination, for tests and log shippers.
func NewWithOutput(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Format {
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}
