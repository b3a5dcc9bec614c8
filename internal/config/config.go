package config

import (
	"fmt"
	"formlab/internal/platform/logger"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

const ServiceName = "formlab"

var (
	structValidator = validator.New(validator.WithRequiredStructEnabled())
	dotEnvOnce      sync.Once
)

type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info"`
	Format logger.Format `envconfig:"FORMAT" default:"json"`
}

// load fills cfg from the environment and then checks its validate tags.
// A .env file in the working directory is applied once; variables already set win.
func load[T any](prefix string) (*T, error) {
	dotEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var cfg T
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, err
	}
	if err := structValidator.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func LoadBase() (*BaseConfig, error) {
	return load[BaseConfig]("")
}

func (c *BaseConfig) IsDevelopment() bool {
	return strings.ToLower(c.Environment) == EnvDevelopment
}

func (c *BaseConfig) IsProduction() bool {
	return strings.ToLower(c.Environment) == EnvProduction
}

func (c *BaseConfig) IsStaging() bool {
	return strings.ToLower(c.Environment) == EnvStaging
}

func (c *BaseConfig) IsTest() bool {
	return strings.ToLower(c.Environment) == EnvTest
}

// LoggerConfig builds the logger settings for this service.
func (c *BaseConfig) LoggerConfig(version string) logger.Config {
	return logger.Config{
		Environment: c.Environment,
		Level:       c.Logger.Level,
		Format:      c.Logger.Format,
		Service:     ServiceName,
		Version:     version,
	}
}
