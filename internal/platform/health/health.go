package health

import (
	"context"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

const defaultCheckTimeout = 5 * time.Second

type CheckResult struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) map[string]CheckResult
	IsHealthy(ctx context.Context) bool
}

type Option func(*Manager)

// WithCheckTimeout bounds every individual check.
func WithCheckTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		if timeout > 0 {
			m.timeout = timeout
		}
	}
}

type Manager struct {
	checkers []Checker
	timeout  time.Duration
	mu       sync.RWMutex
}

var _ ManagerInterface = (*Manager)(nil)

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		checkers: make([]Checker, 0),
		timeout:  defaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Register(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

// CheckAll runs every registered checker concurrently.
func (m *Manager) CheckAll(ctx context.Context) map[string]CheckResult {
	m.mu.RLock()
	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	m.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	var (
		wg      sync.WaitGroup
		resMu   sync.Mutex
		timeout = m.timeout
	)

	for _, checker := range checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			start := time.Now()
			result := c.Check(checkCtx)
			result.Latency = time.Since(start)

			resMu.Lock()
			results[c.Name()] = result
			resMu.Unlock()
		}(checker)
	}
	wg.Wait()

	return results
}

func (m *Manager) IsHealthy(ctx context.Context) bool {
	for _, result := range m.CheckAll(ctx) {
		if result.Status == StatusUnhealthy {
			return false
		}
	}
	return true
}
