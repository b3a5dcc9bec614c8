package health

import (
	"context"
	"fmt"
	"formlab/internal/platform/database/postgres"
	"formlab/internal/platform/health"
)

type Connector interface {
	Connection() *postgres.DB
}

type DatabaseChecker struct {
	db   Connector
	name string
}

func NewDatabaseChecker(db Connector, name string) *DatabaseChecker {
	return &DatabaseChecker{
		db:   db,
		name: name,
	}
}

func (c *DatabaseChecker) Name() string {
	return c.name
}

func (c *DatabaseChecker) Check(ctx context.Context) health.CheckResult {
	db := c.db.Connection()
	if db == nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "database connection is not initialized",
		}
	}

	if err := db.Ping(ctx); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "database connection failed",
			Error:   err.Error(),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("database connection healthy, %d open connections", db.OpenConnections()),
	}
}
