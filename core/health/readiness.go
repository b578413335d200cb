package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rwserver/core/logger"
	"github.com/dmitrymomot/rwserver/core/response"
)

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
// Nil checks are skipped.
//
// Example:
//
//	readinessHandler := health.Readiness(
//		logger,
//		srv.Ready,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	)
func Readiness(log *slog.Logger, fn ...func(context.Context) error) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for _, f := range fn {
			if f == nil {
				continue
			}
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "Readiness check failed", logger.Component("health"), logger.Error(err))
				_ = response.Error(w, response.ErrServiceUnavailable)
				return
			}
		}

		_ = response.String(w, http.StatusOK, "READY")
	})
}
