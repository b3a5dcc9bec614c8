package health

import (
	"net/http"
	"time"

	"formlab/internal/adapters/http/response"
)

type LivenessHandler struct {
	version   string
	startedAt time.Time
}

func NewLivenessHandler(version string) *LivenessHandler {
	return &LivenessHandler{
		version:   version,
		startedAt: time.Now(),
	}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	select {
	case <-ctx.Done():
		response.RespondError(w, http.StatusRequestTimeout, ctx.Err())
		return
	default:
		now := time.Now()
		response.RespondJSON(w, http.StatusOK, LivenessResponse{
			Status:    StatusPass,
			Timestamp: now,
			Version:   h.version,
			Uptime:    now.Sub(h.startedAt).Truncate(time.Second).String(),
		})
	}
}
