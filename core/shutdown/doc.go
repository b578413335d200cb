// Package shutdown provides a single-slot registry for a blocking task that has to
// complete before the HTTP server is finally disposed.
//
// Only one shutdown-coordinating dependency is meaningful per process, so the
// registry holds at most one. Registration is compare-and-set: when two goroutines
// race, exactly one wins and the other gets ErrAlreadyRegistered.
//
//	err := shutdown.Register(func(ctx context.Context) error {
//		return consumer.Drain(ctx)
//	})
//	if errors.Is(err, shutdown.ErrAlreadyRegistered) {
//		// initialisation bug
//	}
//
// The server awaits the dependency after connections have drained:
//
//	shutdown.Await(ctx, log, 20*time.Second)
//
// Tests should use their own registry, or clear the default one:
//
//	reg := shutdown.NewRegistry()
//	srv, err := server.New(cfg, h, counter, server.WithRegistry(reg))
//
//	shutdown.Register(nil) // clears the process-wide slot
package shutdown
