package health

import (
	"context"
	"formlab/internal/platform/health"
	"formlab/internal/platform/logger"
	"net/http"
	"sort"
	"time"

	"formlab/internal/adapters/http/response"
)

type ReadinessHandler struct {
	version       string
	healthManager health.ManagerInterface
}

func NewReadinessHandler(version string, healthManager health.ManagerInterface) *ReadinessHandler {
	return &ReadinessHandler{
		version:       version,
		healthManager: healthManager,
	}
}

func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	log := logger.FromContext(ctx)
	healthResults := h.healthManager.CheckAll(ctx)

	names := make([]string, 0, len(healthResults))
	for name := range healthResults {
		names = append(names, name)
	}
	sort.Strings(names)

	overallStatus := StatusPass
	checks := make(map[string][]CheckDetail, len(names))
	var notes []string
	now := time.Now()

	for _, name := range names {
		result := healthResults[name]

		var status Status
		switch result.Status {
		case health.StatusHealthy:
			status = StatusPass
		case health.StatusUnhealthy:
			status = StatusFail
			overallStatus = StatusFail
		default:
			status = StatusWarn
			if overallStatus == StatusPass {
				overallStatus = StatusWarn
			}
		}

		detail := CheckDetail{
			ComponentId:   name,
			ComponentType: "dependency",
			ObservedValue: float64(result.Latency) / float64(time.Millisecond),
			ObservedUnit:  "ms",
			Status:        status,
			Time:          now,
			Output:        result.Message,
		}
		if result.Error != "" {
			detail.Output = result.Error
		}
		checks[name] = []CheckDetail{detail}

		if status == StatusFail {
			notes = append(notes, "Dependency "+name+" is unavailable")
		}
	}

	statusCode := http.StatusOK
	if overallStatus == StatusFail {
		statusCode = http.StatusServiceUnavailable
		log.Warn("Readiness check failed",
			logger.String("status", string(overallStatus)),
			logger.Strings("notes", notes))
	}

	response.RespondJSON(w, statusCode, ReadinessResponse{
		Status:  overallStatus,
		Version: h.version,
		Checks:  checks,
		Notes:   notes,
	})
}
