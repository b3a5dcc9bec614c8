package config

import (
	"fmt"
	"time"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
}

type HttpServerConfig struct {
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Port            int    `envconfig:"PORT" default:"8080" validate:"min=0,max=65535"`
	ReadTimeout     int    `envconfig:"READ_TIMEOUT" default:"30" validate:"min=0"`
	WriteTimeout    int    `envconfig:"WRITE_TIMEOUT" default:"30" validate:"min=0"`
	IdleTimeout     int    `envconfig:"IDLE_TIMEOUT" default:"120" validate:"min=0"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"30" validate:"min=1"`
}

func (c HttpServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

type RateLimitConfig struct {
	GlobalRequests int `envconfig:"GLOBAL_REQUESTS" default:"1000" validate:"min=1"`
	GlobalWindow   int `envconfig:"GLOBAL_WINDOW" default:"60" validate:"min=1"`
	RequestsPerIP  int `envconfig:"REQUESTS_PER_IP" default:"100" validate:"min=1"`
	WindowSeconds  int `envconfig:"WINDOW_SECONDS" default:"60" validate:"min=1"`
}

func (c RateLimitConfig) GlobalWindowDuration() time.Duration {
	return seconds(c.GlobalWindow)
}

func (c RateLimitConfig) PerIPWindowDuration() time.Duration {
	return seconds(c.WindowSeconds)
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-Request-Id"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:""`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400" validate:"min=0"`
}

func LoadHttp() (*HttpConfig, error) {
	return load[HttpConfig]("")
}
