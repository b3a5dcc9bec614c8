package http

import (
	"formlab/internal/platform/logger"
	"formlab/internal/platform/metrics"
	platformMiddleware "formlab/internal/platform/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"formlab/internal/adapters/http/forms"
	"formlab/internal/adapters/http/health"
	"formlab/internal/config"
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	FormsHandler     *forms.Handler
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	MetricsProvider  *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(
		cfg.RateLimit.GlobalRequests,
		cfg.RateLimit.GlobalWindowDuration(),
	))
	r.Use(httprate.LimitByIP(
		cfg.RateLimit.RequestsPerIP,
		cfg.RateLimit.PerIPWindowDuration(),
	))

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)

	r.Handle("/metrics", deps.MetricsProvider.Handler())

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Route("/forms/registration", func(formRouter chi.Router) {
			formRouter.Get("/approaches", ErrorHandler(deps.FormsHandler.Approaches))
			formRouter.Post("/validate", ErrorHandler(deps.FormsHandler.Validate))
			formRouter.Route("/submissions", func(submissionRouter chi.Router) {
				submissionRouter.Post("/", ErrorHandler(deps.FormsHandler.Submit))
				submissionRouter.Get("/", ErrorHandler(deps.FormsHandler.ListSubmissions))
				submissionRouter.Get("/{id}", ErrorHandler(deps.FormsHandler.GetSubmission))
			})
		})
	})

	return r
}
