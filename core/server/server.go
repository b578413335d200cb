package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/rwserver/core/conncount"
	"github.com/dmitrymomot/rwserver/core/logger"
	"github.com/dmitrymomot/rwserver/core/shutdown"
)

// ConnectionCounter counts open connections and waits for them to drain.
// *conncount.Counter implements it.
type ConnectionCounter interface {
	Increment()
	Decrement()
	Count() int64
	AwaitZero(timeout time.Duration) bool
}

// Server owns an HTTP listener from construction to disposal.
// Safe for concurrent use.
type Server struct {
	config      Config
	handler     http.Handler
	counter     ConnectionCounter
	logger      *slog.Logger
	configurers []Configurer
	binder      Binder
	registry    *shutdown.Registry
	handle      Handle
	sleep       func(time.Duration)

	state atomic.Int32

	stopped      chan struct{}
	shutdownOnce sync.Once
	shutdownErr  error
}

// New builds and binds the server described by cfg.
//
// A disabled config yields a server without a listener whose Join returns immediately.
// Otherwise the builder is seeded from cfg, connection events are wired to counter,
// every configurer is applied once and the binder is called once. Bind failures are
// returned wrapped in ErrBind.
//
// A nil handler answers 404; a nil counter is replaced by conncount.New().
func New(cfg Config, handler http.Handler, counter ConnectionCounter, opts ...Option) (*Server, error) {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	if counter == nil {
		counter = conncount.New()
	}

	s := newServer(cfg, counter, opts...)
	s.handler = handler

	if !cfg.Enabled {
		s.setState(StateDisabled)
		s.logger.Info("Server disabled by configuration", logger.Component("server"))
		return s, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if s.handle != nil {
		s.setState(StateListening)
		return s, nil
	}

	s.setState(StateBuilding)

	b, err := s.build()
	if err != nil {
		return nil, err
	}

	h, err := s.binder(b)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %w", ErrBind, b.Addr, err)
	}
	if h == nil {
		return nil, fmt.Errorf("%w: %w", ErrBind, ErrNilHandle)
	}

	s.handle = h
	s.setState(StateListening)
	s.logger.Info("Server listening", logger.Component("server"), logger.Addr(s.Addr()))

	return s, nil
}

func newServer(cfg Config, counter ConnectionCounter, opts ...Option) *Server {
	s := &Server{
		config:   cfg,
		counter:  counter,
		logger:   logger.Nop(),
		binder:   Bind,
		registry: shutdown.Default(),
		sleep:    time.Sleep,
		stopped:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) build() (*Builder, error) {
	b := newBuilder(s.config, s.handler, s.logger)

	if s.config.hasTLS() {
		tlsConfig, err := LoadTLSConfig(s.config.TLSCertFile, s.config.TLSKeyFile)
		if err != nil {
			return nil, err
		}
		b.Server.TLSConfig = tlsConfig
	}

	b, err := applyConfigurers(b, s.configurers)
	if err != nil {
		return nil, err
	}

	trackConnections(b, s.counter)
	return b, nil
}

// Handle returns the live handle, nil when the server is disabled.
func (s *Server) Handle() Handle {
	return s.handle
}

// Addr returns the bound address, empty when unknown or disabled.
func (s *Server) Addr() string {
	if s.handle == nil {
		return ""
	}
	if addr := s.handle.Addr(); addr != nil {
		return addr.String()
	}
	return ""
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

func (s *Server) setState(st State) {
	s.state.Store(int32(st))
}

// Ready reports ErrNotReady unless the server is listening and not shutting down.
// Suitable as a readiness check so load balancers deregister during the shutdown delay.
func (s *Server) Ready(context.Context) error {
	if st := s.State(); st != StateListening {
		return fmt.Errorf("%w: %s", ErrNotReady, st)
	}
	return nil
}

// Join blocks until the handle is disposed, either by Shutdown or because serving
// stopped on its own, or until ctx is done. Returns immediately for a disabled server.
// The returned error is the one that terminated serving, if any.
func (s *Server) Join(ctx context.Context) error {
	if s.handle == nil {
		return nil
	}

	select {
	case <-s.handle.OnDispose():
	case <-s.stopped:
	case <-ctx.Done():
		return ctx.Err()
	}

	return s.handle.Err()
}

// Shutdown runs the shutdown sequence once; later calls return the first result.
// Cancelling ctx does not interrupt the sequence.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.State() == StateDisabled {
		return nil
	}

	s.shutdownOnce.Do(func() {
		s.setState(StateShuttingDown)
		s.shutdownErr = s.shutdown(ctx)
		s.setState(StateStopped)
		close(s.stopped)
	})

	return s.shutdownErr
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// The returned function blocks until ctx is cancelled, then performs Shutdown.
// If serving stops on its own first, its error is returned.
func (s *Server) Run(ctx context.Context) func() error {
	return func() error {
		if s.handle == nil {
			return nil
		}

		joined := make(chan error, 1)
		go func() {
			joined <- s.Join(context.Background())
		}()

		select {
		case <-ctx.Done():
			return s.Shutdown(context.WithoutCancel(ctx))
		case err := <-joined:
			if err != nil {
				s.logger.Error("Server stopped unexpectedly", logger.Component("server"), logger.Error(err))
				s.setState(StateStopped)
			}
			return err
		}
	}
}
