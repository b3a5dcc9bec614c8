package health

import (
	"context"
	"fmt"
	"formlab/internal/platform/health"
)

type SubmissionCounter interface {
	Count(ctx context.Context) (int, error)
}

type MemoryChecker struct {
	store SubmissionCounter
}

func NewMemoryChecker(store SubmissionCounter) *MemoryChecker {
	return &MemoryChecker{store: store}
}

func (c *MemoryChecker) Name() string {
	return "memory_storage"
}

func (c *MemoryChecker) Check(ctx context.Context) health.CheckResult {
	if err := ctx.Err(); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "memory storage check cancelled",
			Error:   err.Error(),
		}
	}

	count, err := c.store.Count(ctx)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "memory storage unavailable",
			Error:   err.Error(),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("memory storage operational, %d submissions", count),
	}
}
