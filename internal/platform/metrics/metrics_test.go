package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"formlab/internal/platform/validator"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type MetricsTestSuite struct {
	suite.Suite
	provider *Provider
	ctx      context.Context
}

func (s *MetricsTestSuite) SetupTest() {
	var err error
	s.provider, err = NewProvider()
	s.Require().NoError(err)
	s.Require().NotNil(s.provider)
	s.ctx = context.Background()
}

func (s *MetricsTestSuite) scrape() string {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	s.provider.Handler().ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)
	return w.Body.String()
}

func (s *MetricsTestSuite) TestNewProvider_Success() {
	provider, err := NewProvider()

	s.Assert().NoError(err)
	s.Assert().NotNil(provider.RequestsTotal)
	s.Assert().NotNil(provider.RequestDuration)
	s.Assert().NotNil(provider.RequestsInFlight)
	s.Assert().NotNil(provider.Validations)
	s.Assert().NotNil(provider.ValidationErrors)
	s.Assert().NotNil(provider.registry)
}

func (s *MetricsTestSuite) TestNewProvider_SeparateRegistries() {
	other, err := NewProvider()
	s.Require().NoError(err)

	s.Assert().NotSame(s.provider.registry, other.registry)
}

func (s *MetricsTestSuite) TestProvider_Handler() {
	s.provider.RequestsTotal.Add(s.ctx, 1, metric.WithAttributes(attribute.String("method", "GET")))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.provider.Handler().ServeHTTP(w, req)

	s.Assert().Equal(http.StatusOK, w.Code)
	s.Assert().Contains(w.Header().Get("Content-Type"), "text/plain")
	body := w.Body.String()
	s.Assert().True(strings.Contains(body, "# HELP") || strings.Contains(body, "# TYPE"))
}

func (s *MetricsTestSuite) TestProvider_HTTPInstruments() {
	attrs := metric.WithAttributes(attribute.String("method", "POST"), attribute.String("status", "201"))
	s.provider.RequestsTotal.Add(s.ctx, 1, attrs)
	s.provider.RequestDuration.Record(s.ctx, 0.25, attrs)
	s.provider.RequestsInFlight.Add(s.ctx, 2)
	s.provider.RequestsInFlight.Add(s.ctx, -1)

	body := s.scrape()

	s.Assert().Contains(body, "http_requests_total")
	s.Assert().Contains(body, "http_request_duration_seconds")
	s.Assert().Contains(body, "http_requests_in_flight")
}

func (s *MetricsTestSuite) TestRecordValidation_Valid() {
	s.provider.RecordValidation(s.ctx, "rules", validator.Errors{})

	body := s.scrape()

	s.Assert().Contains(body, "form_validations_total")
	s.Assert().Contains(body, `outcome="valid"`)
	s.Assert().Contains(body, `approach="rules"`)
	s.Assert().NotContains(body, `field="`)
}

func (s *MetricsTestSuite) TestRecordValidation_InvalidCountsEachField() {
	s.provider.RecordValidation(s.ctx, "tags", validator.Errors{
		"email": "Please enter a valid email address",
		"age":   "You must be at least 18 years old",
	})

	body := s.scrape()

	s.Assert().Contains(body, `outcome="invalid"`)
	s.Assert().Contains(body, "form_validation_errors_total")
	s.Assert().Contains(body, `field="email"`)
	s.Assert().Contains(body, `field="age"`)
}

func (s *MetricsTestSuite) TestRecordValidation_Concurrent() {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.provider.RecordValidation(s.ctx, "rules", validator.Errors{"name": "Name is required"})
			}
		}()
	}
	wg.Wait()

	s.Assert().Contains(s.scrape(), `field="name"`)
}

func BenchmarkProvider_RecordValidation(b *testing.B) {
	provider, err := NewProvider()
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	errs := validator.Errors{"email": "invalid", "password": "too short"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		provider.RecordValidation(ctx, "rules", errs)
	}
}

func TestMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}
