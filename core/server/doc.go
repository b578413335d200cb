// Package server manages the lifecycle of an HTTP listener: construction, binding,
// joining and an orderly, time-bounded shutdown that drains in-flight connections.
//
// # Lifecycle
//
//	unstarted -> building -> listening -> shutting_down -> stopped
//	unstarted -> disabled (Config.Enabled == false)
//
// New seeds a Builder from Config, applies every Configurer once, wires connection
// events to the ConnectionCounter and calls the Binder, which returns a live Handle.
// Bind failures are fatal and returned from New.
//
// # Basic Usage
//
//	counter := conncount.New()
//
//	srv, err := server.New(cfg, handler, counter,
//		server.WithLogger(log),
//		server.WithConfigurers(
//			server.Middleware(middleware.RequestID),
//			server.IdleTimeout(2*time.Minute),
//		),
//	)
//	if err != nil {
//		log.Error("Failed to start server", logger.Error(err))
//		os.Exit(1)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx))
//	if err := eg.Wait(); err != nil {
//		os.Exit(1)
//	}
//
// # Shutdown Sequence
//
// Shutdown (or the stateless ShutdownHook) logs, waits ShutdownDelaySeconds, stops
// accepting connections, waits up to ShutdownTimeoutSeconds for the connection count
// to reach zero, awaits the registered shutdown dependency and disposes the handle.
// A drain timeout is logged at error level and shutdown proceeds. Only a disposal
// failure is returned.
//
// The log lines are stable and may be matched by monitoring:
//
//	Shutdown requested. Waiting 5 seconds before commencing.
//	Shutdown commencing. Will wait up to 20 seconds for ongoing requests to complete.
//	Shutdown proceeded while connection count was not zero: 4
//	Shutdown complete
//
// # Testing
//
// WithBinder substitutes binding, WithHandle adopts an existing (or fake) handle and
// WithRegistry isolates the shutdown dependency slot:
//
//	var binds int
//	srv, _ := server.New(cfg, handler, counter, server.WithBinder(func(b *server.Builder) (server.Handle, error) {
//		binds++
//		return fakeHandle, nil
//	}))
package server
