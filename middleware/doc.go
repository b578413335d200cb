// Package middleware provides net/http middleware for request tracing and logging.
//
// Every middleware has the func(http.Handler) http.Handler shape, so it can be
// installed with the server's Middleware configurer:
//
//	srv, err := server.New(cfg, composite, counter,
//		server.WithConfigurers(server.Middleware(
//			middleware.Logging(log),
//			middleware.RequestID,
//		)),
//	)
//
// # Request ID
//
// RequestID assigns a UUID to every request, stores it in the request context and
// echoes it in the X-Request-ID response header:
//
//	id, ok := middleware.GetRequestID(r.Context())
//
// RequestIDWithConfig can reuse an incoming header, change the header name or the
// generator, and skip selected requests.
//
// # Logging
//
// Logging writes one "HTTP request completed" record per request with method, path,
// status code, response size, duration and request ID. Server errors log at error
// level; client errors and requests slower than SlowRequestThreshold log at warn.
//
//	middleware.LoggingWithConfig(middleware.LoggingConfig{
//		Logger:     log,
//		LogHeaders: true,
//		Skip: func(r *http.Request) bool {
//			return r.URL.Path == "/live"
//		},
//	})
package middleware
