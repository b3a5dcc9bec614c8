package main

import (
	"formlab/internal/adapters/database"
	"formlab/internal/adapters/health"
	httpAdapter "formlab/internal/adapters/http"
	"formlab/internal/adapters/http/forms"
	healthHttp "formlab/internal/adapters/http/health"
	memoryRepo "formlab/internal/adapters/repository/memory"
	postgresRepo "formlab/internal/adapters/repository/postgres"
	"formlab/internal/adapters/validator"
	"formlab/internal/config"
	"formlab/internal/core/domain/registration"
	"formlab/internal/core/ports"
	registrationUseCase "formlab/internal/core/usecase/registration"
	platformHealth "formlab/internal/platform/health"
	"formlab/internal/platform/logger"
	"formlab/internal/platform/metrics"
	validatorPlatform "formlab/internal/platform/validator"
	"formlab/internal/version"

	"go.uber.org/fx"
)

func main() {
	fx.New(appModule).Run()
}

// submissionStore is what both storage backends offer to the use case and the health checks.
type submissionStore interface {
	ports.SubmissionRepository
	health.SubmissionCounter
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadDatabase),
	fx.Provide(config.LoadForms),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return cfg.LoggerConfig(version.Get())
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(func(cfg *config.DatabaseConfig, log logger.Logger) *database.Lifecycle {
		return database.NewDatabaseLifecycle(cfg, log, postgresRepo.Migrate)
	}),

	// Storage
	fx.Provide(func(cfg *config.FormsConfig, db *database.Lifecycle) submissionStore {
		if cfg.UsesPostgres() {
			return postgresRepo.NewRepository(db)
		}
		return memoryRepo.NewRepository()
	}),
	fx.Provide(func(store submissionStore) ports.SubmissionRepository { return store }),

	// Health Checks
	fx.Provide(fx.Annotate(
		func(cfg *config.FormsConfig, store submissionStore, db *database.Lifecycle) []platformHealth.Checker {
			checkers := []platformHealth.Checker{health.NewMemoryChecker(store)}
			if cfg.UsesPostgres() {
				checkers = []platformHealth.Checker{health.NewDatabaseChecker(db, "postgres")}
			}
			if cfg.HealthUpstreamURL != "" {
				checkers = append(checkers, health.NewAPIChecker(cfg.HealthUpstreamURL, "upstream"))
			}
			return checkers
		},
		fx.ResultTags(`group:"health_checkers,flatten"`),
	)),
	fx.Provide(fx.Annotate(
		func(cfg *config.FormsConfig, checkers []platformHealth.Checker) *platformHealth.Manager {
			m := platformHealth.NewManager(platformHealth.WithCheckTimeout(cfg.HealthCheckTimeout))
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(``, `group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// HTTP Server
	fx.Provide(fx.Annotate(metrics.NewProvider, fx.As(fx.Self(), new(ports.ValidationRecorder)))),
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(forms.NewHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Get())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), hm)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, formsHandler *forms.Handler, liveness *healthHttp.LivenessHandler, readiness *healthHttp.ReadinessHandler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			FormsHandler:     formsHandler,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			MetricsProvider:  metrics,
		}
	}),

	// Domain
	fx.Provide(fx.Annotate(registration.NewService, fx.As(new(registrationUseCase.SubmissionChecker)))),
	fx.Provide(fx.Annotate(
		func(cfg *config.FormsConfig, repo ports.SubmissionRepository, checker registrationUseCase.SubmissionChecker, recorder ports.ValidationRecorder, validate validatorPlatform.Validator) *registrationUseCase.Usecase {
			return registrationUseCase.NewUsecase(
				registrationUseCase.Config{
					DefaultApproach: string(cfg.DefaultApproach),
					BcryptCost:      int(cfg.BcryptCost),
				},
				repo,
				checker,
				recorder,
				validator.NewRuleApproach(),
				validator.NewTagApproach(validate),
			)
		},
		fx.As(new(forms.Manager)),
	)),

	// Lifecycle Hooks
	fx.Invoke(func(log logger.Logger, cfg *config.FormsConfig) {
		info := version.Info()
		log.Info("Starting formlab",
			logger.String("version", info.Version),
			logger.String("git_commit", info.GitCommit),
			logger.String("build_time", info.BuildTime),
			logger.String("go_version", info.GoVersion),
			logger.String("storage", string(cfg.Storage)),
			logger.String("default_approach", string(cfg.DefaultApproach)))
	}),
	fx.Invoke(func(lc fx.Lifecycle, cfg *config.FormsConfig, db *database.Lifecycle, srv *httpAdapter.Server) {
		if cfg.UsesPostgres() {
			lc.Append(fx.Hook{
				OnStart: db.Start,
				OnStop:  db.Stop,
			})
		}
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),

	//fx.NopLogger,
)
