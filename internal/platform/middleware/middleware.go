package middleware

import (
	"formlab/internal/platform/logger"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger puts a request-scoped logger into the context and logs one entry per request.
func RequestLogger(baseLogger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			contextLogger := baseLogger.With(logger.String("request_id", middleware.GetReqID(r.Context())))
			ctx := logger.WithLogger(r.Context(), contextLogger)

			next.ServeHTTP(ww, r.WithContext(ctx))

			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("route", routePattern(r)),
				logger.String("remote_addr", r.RemoteAddr),
				logger.Int("status", ww.Status()),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Duration("duration", time.Since(start)),
			}
			if ww.Status() >= http.StatusInternalServerError {
				contextLogger.Warn("HTTP Request", fields...)
				return
			}
			contextLogger.Info("HTTP Request", fields...)
		})
	}
}
