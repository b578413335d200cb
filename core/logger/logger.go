package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type settings struct {
	level  slog.Level
	json   bool
	output io.Writer
	attrs  []slog.Attr
	source bool
}

// Option configures the logger built by New.
type Option func(*settings)

// New creates a slog.Logger. Defaults to text format, info level, stdout.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     s.level,
		AddSource: s.source,
	}

	var h slog.Handler
	if s.json {
		h = slog.NewJSONHandler(s.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(s.output, handlerOpts)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}

	return slog.New(h)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithDevelopment configures text output at debug level with source locations.
func WithDevelopment(app string) Option {
	return func(s *settings) {
		s.level = slog.LevelDebug
		s.json = false
		s.source = true
		s.attrs = append(s.attrs, slog.String("app", app), slog.String("env", "development"))
	}
}

// WithProduction configures JSON output at info level.
func WithProduction(app string) Option {
	return func(s *settings) {
		s.level = slog.LevelInfo
		s.json = true
		s.attrs = append(s.attrs, slog.String("app", app), slog.String("env", "production"))
	}
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(s *settings) {
		s.level = level
	}
}

// WithLevelString sets the minimum level from its name ("debug", "info", "warn", "error").
// Unknown names keep the current level.
func WithLevelString(level string) Option {
	return func(s *settings) {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err == nil {
			s.level = l
		}
	}
}

// WithJSONFormatter switches to JSON output.
func WithJSONFormatter() Option {
	return func(s *settings) {
		s.json = true
	}
}

// WithTextFormatter switches to text output.
func WithTextFormatter() Option {
	return func(s *settings) {
		s.json = false
	}
}

// WithOutput sets the destination writer. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}
