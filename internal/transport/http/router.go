// Package httptransport assembles the service router: the receipt endpoints
// behind the shared middleware chain, plus the operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tally/internal/platform/metrics"
	"tally/internal/platform/middleware"
	"tally/internal/receipt/handler"
	"tally/pkg/platform/httputil"
)

// NewRouter wires all public endpoints. The metrics argument may be nil in
// tests; the latency middleware then drops out of the chain.
func NewRouter(h *handler.Handler, logger *slog.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))

	r.Get("/healthz", handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		h.Register(r)
	})

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
