package server

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/rwserver/core/shutdown"
)

// Option configures server behavior.
type Option func(*Server)

// WithLogger sets a custom logger for server operations. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConfigurers adds configurers applied to the builder before binding.
func WithConfigurers(configurers ...Configurer) Option {
	return func(s *Server) {
		s.configurers = append(s.configurers, configurers...)
	}
}

// WithBinder replaces the default Bind, e.g. to intercept binding in tests.
// Nil is ignored.
func WithBinder(binder Binder) Option {
	return func(s *Server) {
		if binder != nil {
			s.binder = binder
		}
	}
}

// WithRegistry sets the shutdown dependency registry awaited during shutdown.
// Defaults to shutdown.Default(). Nil is ignored.
func WithRegistry(registry *shutdown.Registry) Option {
	return func(s *Server) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithHandle adopts an already bound handle instead of building and binding one.
func WithHandle(h Handle) Option {
	return func(s *Server) {
		s.handle = h
	}
}

// withSleep replaces the delay wait, so tests can observe it without sleeping.
func withSleep(fn func(time.Duration)) Option {
	return func(s *Server) {
		s.sleep = fn
	}
}
