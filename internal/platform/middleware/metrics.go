package middleware

import (
	"formlab/internal/platform/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func MetricsMiddleware(metricsProvider *metrics.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			metricsProvider.RequestsInFlight.Add(ctx, 1)
			defer metricsProvider.RequestsInFlight.Add(ctx, -1)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			attrs := metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("path", routePattern(r)),
				attribute.String("status", strconv.Itoa(ww.Status())),
			)
			metricsProvider.RequestsTotal.Add(ctx, 1, attrs)
			metricsProvider.RequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		})
	}
}

// routePattern keeps submission IDs out of metric labels.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
