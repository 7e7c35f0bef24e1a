package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/http/metric"
)

const MetricsPath = "/metrics"

// Metrics records request count, latency and in-flight gauge. Requests are
// labelled by route pattern so path parameters do not explode cardinality.
func Metrics(m *metric.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == MetricsPath {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()

			m.InflightRequests.Inc()
			defer m.InflightRequests.Dec()

			next.ServeHTTP(ww, r)

			duration := time.Since(t1).Seconds()
			labels := []string{r.Method, routePattern(r), strconv.Itoa(ww.Status())}

			m.RequestsTotal.WithLabelValues(labels...).Inc()
			m.RequestDuration.WithLabelValues(labels...).Observe(duration)
		})
	}
}

// routePattern returns the matched chi pattern, available once the router
// has served r.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "<unknown>"
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return "<unknown>"
}
