package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Storage string

const (
	StorageMemory   Storage = "memory"
	StoragePostgres Storage = "postgres"
)

func (s *Storage) Decode(value string) error {
	switch strings.ToLower(value) {
	case "memory":
		*s = StorageMemory
	case "postgres":
		*s = StoragePostgres
	default:
		return fmt.Errorf("invalid storage: %s", value)
	}
	return nil
}

type Approach string

func (a *Approach) Decode(value string) error {
	switch strings.ToLower(value) {
	case "rules", "tags":
		*a = Approach(strings.ToLower(value))
	default:
		return fmt.Errorf("invalid validation approach: %s", value)
	}
	return nil
}

type BcryptCost int

func (c *BcryptCost) Decode(value string) error {
	cost, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid bcrypt cost: %s", value)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	*c = BcryptCost(cost)
	return nil
}

type FormsConfig struct {
	Storage            Storage       `envconfig:"STORAGE" default:"memory"`
	DefaultApproach    Approach      `envconfig:"DEFAULT_APPROACH" default:"rules"`
	BcryptCost         BcryptCost    `envconfig:"BCRYPT_COST" default:"10"`
	HealthUpstreamURL  string        `envconfig:"HEALTH_UPSTREAM_URL" validate:"omitempty,http_url"`
	HealthCheckTimeout time.Duration `envconfig:"HEALTH_CHECK_TIMEOUT" default:"5s" validate:"gt=0"`
}

func (c *FormsConfig) UsesPostgres() bool {
	return c.Storage == StoragePostgres
}

func LoadForms() (*FormsConfig, error) {
	return load[FormsConfig]("FORMS")
}
