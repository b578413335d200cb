// Package handler provides the request dispatch pipeline handed to the server.
//
// A Composite holds an ordered list of RequestHandlers. Each one inspects the
// request and either writes a response and returns true, or returns false so the
// next handler is tried. Requests nobody claims get a JSON 404; a panicking
// handler is recovered, logged with its stack and answered with a JSON 500.
//
//	h := handler.NewComposite(
//		handler.WithLogger(log),
//		handler.WithHandlers(
//			handler.Route(http.MethodGet, "/live", http.HandlerFunc(health.Liveness)),
//			handler.Route(http.MethodGet, "/ready", health.Readiness(log, srv.Ready)),
//			handler.Prefix("/api/", apiHandler),
//		),
//	)
//
// Route matches the exact path and, for GET routes, HEAD requests too.
package handler
