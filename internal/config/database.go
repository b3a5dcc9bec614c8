package config

import (
	"fmt"
	"time"
)

type DatabaseConfig struct {
	BaseConfig
	Postgres PostgresConfig `envconfig:"POSTGRES"`
}

type PostgresConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost" validate:"required"`
	Port            int           `envconfig:"PORT" default:"5432" validate:"min=1,max=65535"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:""`
	Database        string        `envconfig:"DB" default:"formlab"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"min=1"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5" validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

func (c *PostgresConfig) GetMaxOpenConns() int {
	return c.MaxOpenConns
}

func (c *PostgresConfig) GetMaxIdleConns() int {
	return c.MaxIdleConns
}

func (c *PostgresConfig) GetConnMaxLifetime() time.Duration {
	return c.ConnMaxLifetime
}

func (c *PostgresConfig) GetConnMaxIdleTime() time.Duration {
	return c.ConnMaxIdleTime
}

func LoadDatabase() (*DatabaseConfig, error) {
	return load[DatabaseConfig]("")
}
