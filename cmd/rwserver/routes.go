package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rwserver/core/handler"
	"github.com/dmitrymomot/rwserver/core/health"
	"github.com/dmitrymomot/rwserver/core/response"
)

// routes builds the request pipeline. checks gate the readiness endpoint.
func routes(log *slog.Logger, appName string, checks ...func(context.Context) error) *handler.Composite {
	return handler.NewComposite(
		handler.WithLogger(log),
		handler.WithHandlers(
			handler.Route(http.MethodGet, "/live", http.HandlerFunc(health.Liveness)),
			handler.Route(http.MethodGet, "/ready", health.Readiness(log, checks...)),
			handler.Route(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = response.JSON(w, http.StatusOK, map[string]string{"app": appName, "status": "ok"})
			})),
		),
	)
}
