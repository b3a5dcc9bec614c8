package health

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HealthTestSuite struct {
	suite.Suite
	manager *Manager
	ctx     context.Context
}

func (suite *HealthTestSuite) SetupTest() {
	suite.manager = NewManager()
	suite.ctx = context.Background()
}

func (suite *HealthTestSuite) TestNewManager() {
	manager := NewManager()

	require.NotNil(suite.T(), manager)
	assert.Empty(suite.T(), manager.checkers)
	assert.Equal(suite.T(), defaultCheckTimeout, manager.timeout)
}

func (suite *HealthTestSuite) TestNewManager_WithCheckTimeout() {
	assert.Equal(suite.T(), time.Second, NewManager(WithCheckTimeout(time.Second)).timeout)
	assert.Equal(suite.T(), defaultCheckTimeout, NewManager(WithCheckTimeout(0)).timeout)
}

func (suite *HealthTestSuite) TestRegister_MultipleCheckers() {
	suite.manager.Register(&stubChecker{name: "checker1"})
	suite.manager.Register(&stubChecker{name: "checker2"})

	suite.manager.mu.RLock()
	defer suite.manager.mu.RUnlock()
	assert.Len(suite.T(), suite.manager.checkers, 2)
}

func (suite *HealthTestSuite) TestCheckAll_NoCheckers() {
	results := suite.manager.CheckAll(suite.ctx)

	assert.NotNil(suite.T(), results)
	assert.Empty(suite.T(), results)
}

func (suite *HealthTestSuite) TestCheckAll_MixedCheckers() {
	suite.manager.Register(&stubChecker{
		name:   "database",
		result: CheckResult{Status: StatusHealthy, Message: "OK"},
		delay:  time.Millisecond,
	})
	suite.manager.Register(&stubChecker{
		name:   "upstream",
		result: CheckResult{Status: StatusUnhealthy, Error: "service unavailable"},
	})

	results := suite.manager.CheckAll(suite.ctx)

	require.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), StatusHealthy, results["database"].Status)
	assert.Equal(suite.T(), "OK", results["database"].Message)
	assert.Greater(suite.T(), results["database"].Latency, time.Duration(0))
	assert.Equal(suite.T(), StatusUnhealthy, results["upstream"].Status)
	assert.Equal(suite.T(), "service unavailable", results["upstream"].Error)
}

func (suite *HealthTestSuite) TestCheckAll_RunsConcurrently() {
	for i := 0; i < 5; i++ {
		suite.manager.Register(&stubChecker{
			name:   fmt.Sprintf("slow-%d", i),
			result: CheckResult{Status: StatusHealthy},
			delay:  50 * time.Millisecond,
		})
	}

	start := time.Now()
	results := suite.manager.CheckAll(suite.ctx)

	assert.Len(suite.T(), results, 5)
	assert.Less(suite.T(), time.Since(start), 200*time.Millisecond)
}

func (suite *HealthTestSuite) TestCheckAll_AppliesTimeout() {
	manager := NewManager(WithCheckTimeout(10 * time.Millisecond))
	manager.Register(&stubChecker{name: "hanging", waitForDeadline: true})

	results := manager.CheckAll(suite.ctx)

	assert.Equal(suite.T(), StatusUnhealthy, results["hanging"].Status)
	assert.Equal(suite.T(), context.DeadlineExceeded.Error(), results["hanging"].Error)
}

func (suite *HealthTestSuite) TestIsHealthy() {
	assert.True(suite.T(), suite.manager.IsHealthy(suite.ctx), "no checkers means healthy")

	suite.manager.Register(&stubChecker{name: "a", result: CheckResult{Status: StatusHealthy}})
	assert.True(suite.T(), suite.manager.IsHealthy(suite.ctx))

	suite.manager.Register(&stubChecker{name: "b", result: CheckResult{Status: StatusUnhealthy}})
	assert.False(suite.T(), suite.manager.IsHealthy(suite.ctx))
}

func (suite *HealthTestSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			suite.manager.Register(&stubChecker{name: fmt.Sprintf("checker-%d", id), result: CheckResult{Status: StatusHealthy}})
		}(i)
		go func() {
			defer wg.Done()
			suite.manager.CheckAll(suite.ctx)
		}()
	}
	wg.Wait()

	assert.Len(suite.T(), suite.manager.CheckAll(suite.ctx), 10)
}

func TestHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

type stubChecker struct {
	name            string
	result          CheckResult
	delay           time.Duration
	waitForDeadline bool
	calls           atomic.Int32
}

func (s *stubChecker) Name() string {
	return s.name
}

func (s *stubChecker) Check(ctx context.Context) CheckResult {
	s.calls.Add(1)
	if s.waitForDeadline {
		<-ctx.Done()
		return CheckResult{Status: StatusUnhealthy, Error: ctx.Err().Error()}
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.result
}
