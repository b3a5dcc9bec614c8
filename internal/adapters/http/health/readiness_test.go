package health

import (
	"encoding/json"
	"formlab/internal/platform/health"
	"formlab/internal/platform/health/mocks"
	"formlab/internal/platform/logger"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkReadiness(t *testing.T, results map[string]health.CheckResult) (*httptest.ResponseRecorder, ReadinessResponse) {
	t.Helper()
	mockManager := mocks.NewMockManagerInterface(t)
	mockManager.EXPECT().CheckAll(mock.Anything).Return(results).Once()

	handler := NewReadinessHandler("v1.2.3", mockManager)
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), logger.NewNop()))
	w := httptest.NewRecorder()

	handler.Check(w, req)

	var response ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestNewReadinessHandler(t *testing.T) {
	mockManager := mocks.NewMockManagerInterface(t)

	handler := NewReadinessHandler("v1.0.0", mockManager)

	assert.Equal(t, "v1.0.0", handler.version)
	assert.Equal(t, mockManager, handler.healthManager)
}

func TestReadinessHandler_Check_AllHealthy(t *testing.T) {
	w, response := checkReadiness(t, map[string]health.CheckResult{
		"postgres": {
			Status:  health.StatusHealthy,
			Message: "database connection healthy",
			Latency: 1500 * time.Microsecond,
		},
		"memory_storage": {
			Status:  health.StatusHealthy,
			Message: "memory storage operational, 0 submissions",
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, StatusPass, response.Status)
	assert.Equal(t, "v1.2.3", response.Version)
	assert.Len(t, response.Checks, 2)
	assert.Empty(t, response.Notes)

	dbCheck := response.Checks["postgres"][0]
	assert.Equal(t, "postgres", dbCheck.ComponentId)
	assert.Equal(t, "dependency", dbCheck.ComponentType)
	assert.Equal(t, StatusPass, dbCheck.Status)
	assert.Equal(t, "database connection healthy", dbCheck.Output)
	assert.InDelta(t, 1.5, dbCheck.ObservedValue, 0.001)
	assert.Equal(t, "ms", dbCheck.ObservedUnit)
}

func TestReadinessHandler_Check_UnhealthyDependencies(t *testing.T) {
	w, response := checkReadiness(t, map[string]health.CheckResult{
		"upstream": {Status: health.StatusUnhealthy, Error: "connection refused"},
		"postgres": {Status: health.StatusUnhealthy, Error: "timeout"},
		"memory":   {Status: health.StatusHealthy},
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, StatusFail, response.Status)
	assert.Equal(t, []string{
		"Dependency postgres is unavailable",
		"Dependency upstream is unavailable",
	}, response.Notes)
	assert.Equal(t, "connection refused", response.Checks["upstream"][0].Output)
}

func TestReadinessHandler_Check_UnknownStatusWarns(t *testing.T) {
	w, response := checkReadiness(t, map[string]health.CheckResult{
		"postgres": {Status: health.StatusHealthy},
		"upstream": {Status: "degraded", Message: "High latency detected"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatusWarn, response.Status)
	assert.Equal(t, StatusWarn, response.Checks["upstream"][0].Status)
}

func TestReadinessHandler_Check_FailBeatsWarn(t *testing.T) {
	w, response := checkReadiness(t, map[string]health.CheckResult{
		"a": {Status: "degraded"},
		"b": {Status: health.StatusUnhealthy},
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, StatusFail, response.Status)
}

func TestReadinessHandler_Check_NoHealthChecks(t *testing.T) {
	w, response := checkReadiness(t, map[string]health.CheckResult{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatusPass, response.Status)
	assert.Empty(t, response.Checks)
	assert.Empty(t, response.Notes)
}
