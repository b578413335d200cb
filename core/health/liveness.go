package health

import (
	"net/http"

	"github.com/dmitrymomot/rwserver/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
//
// Example:
//
//	handler.Route(http.MethodGet, "/health/live", http.HandlerFunc(health.Liveness))
func Liveness(w http.ResponseWriter, _ *http.Request) {
	_ = response.String(w, http.StatusOK, "ALIVE")
}

// NoContent returns HTTP 204 without body. Ideal for high-frequency checks.
func NoContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
