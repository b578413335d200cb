// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	handler.NewComposite(handler.WithHandlers(
//		handler.Route(http.MethodGet, "/health/live", http.HandlerFunc(health.Liveness)),
//		handler.Route(http.MethodGet, "/health/ready", health.Readiness(
//			logger,
//			srv.Ready,
//			pg.Healthcheck(pool),
//		)),
//		handler.Route(http.MethodGet, "/ping", http.HandlerFunc(health.NoContent)),
//	))
//
// Passing the server's Ready check makes the instance report unready as soon as
// shutdown begins, so load balancers stop routing to it during the shutdown delay.
//
// Dependency checks must follow func(context.Context) error signature:
//
//	func checkDB(ctx context.Context) error {
//		return db.PingContext(ctx)
//	}
package health
