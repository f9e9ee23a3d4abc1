package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/healthtrack-app/healthtrack/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(middleware.Compress(5))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/profiles", h.demoProfiles)
		r.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/predictions", h.predict)
		r.Post("/api/predictions/narrative", h.narrative)
		r.Get("/api/dashboard", h.history)
		r.Get("/api/dashboard/users", h.dashboardUsers)
		r.Post("/api/dashboard/email", h.emailReport)
	})

	return router
}
