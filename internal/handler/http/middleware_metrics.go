package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/healthtrack-app/healthtrack/internal/metrics"
)

// withMetrics records a counter and a duration sample per finished request,
// labelled by the chi route pattern rather than the raw path so that
// parameterised routes collapse into one series.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		endpoint := r.URL.Path
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil && routeCtx.RoutePattern() != "" {
			endpoint = routeCtx.RoutePattern()
		}

		metrics.RecordHTTPRequest(endpoint, r.Method, strconv.Itoa(lw.status), time.Since(start).Seconds())
	})
}
