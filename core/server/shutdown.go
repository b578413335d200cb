package server

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/rwserver/core/logger"
)

// ShutdownHook performs the shutdown sequence on handle without a Server instance.
// It is the integration point for a process-exit handler and must be invoked once.
//
// Steps, each best-effort and sequential:
//  1. wait ShutdownDelaySeconds so load balancers can deregister the instance;
//  2. stop accepting new connections;
//  3. wait up to ShutdownTimeoutSeconds for open connections to drain, logging an
//     error if they did not;
//  4. await the registered shutdown dependency;
//  5. dispose the handle, bounded by ShutdownTimeoutSeconds.
//
// Only a disposal error is returned. Cancelling ctx does not interrupt the sequence.
// Options other than WithLogger and WithRegistry have no effect.
func ShutdownHook(ctx context.Context, cfg Config, handle Handle, counter ConnectionCounter, opts ...Option) error {
	s := newServer(cfg, counter, opts...)
	s.handle = handle
	return s.shutdown(ctx)
}

func (s *Server) shutdown(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	delay := s.config.ShutdownDelaySeconds
	timeout := s.config.ShutdownTimeoutSeconds

	s.logger.InfoContext(ctx,
		fmt.Sprintf("Shutdown requested. Waiting %d seconds before commencing.", delay),
		logger.Component("server"), logger.Seconds("delay_seconds", delay))
	if d := s.config.ShutdownDelay(); d > 0 {
		s.sleep(d)
	}

	s.logger.InfoContext(ctx,
		fmt.Sprintf("Shutdown commencing. Will wait up to %d seconds for ongoing requests to complete.", timeout),
		logger.Component("server"), logger.Seconds("timeout_seconds", timeout))
	start := time.Now()

	if s.handle != nil {
		if err := s.handle.StopAccepting(); err != nil {
			s.logger.WarnContext(ctx, "Failed to stop accepting connections",
				logger.Component("server"), logger.Error(err))
		}
	}

	if s.counter != nil && !s.counter.AwaitZero(s.config.ShutdownTimeout()) {
		count := s.counter.Count()
		s.logger.ErrorContext(ctx,
			fmt.Sprintf("Shutdown proceeded while connection count was not zero: %d", count),
			logger.Component("server"), logger.Count("connections", count))
	}

	if s.registry != nil {
		// Failures are logged by the registry; disposal proceeds regardless.
		_ = s.registry.Await(ctx, s.logger, s.config.ShutdownTimeout())
	}

	if s.handle != nil {
		disposeCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout())
		defer cancel()

		if err := s.handle.Dispose(disposeCtx); err != nil {
			s.logger.ErrorContext(ctx, "Shutdown failed", logger.Component("server"), logger.Error(err))
			return fmt.Errorf("%w: %w", ErrDispose, err)
		}
	}

	s.logger.InfoContext(ctx, "Shutdown complete", logger.Component("server"), logger.Elapsed(start))
	return nil
}
