package metrics

import (
	"context"
	"formlab/internal/platform/validator"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter
	Validations      metric.Int64Counter
	ValidationErrors metric.Int64Counter
	registry         *prometheus.Registry
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter("formlab")

	requestsTotal, err := meter.Int64Counter(
		"http_requests",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	requestsInFlight, err := meter.Int64UpDownCounter(
		"http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"),
	)
	if err != nil {
		return nil, err
	}

	validations, err := meter.Int64Counter(
		"form_validations",
		metric.WithDescription("Form validation runs by approach and outcome"),
	)
	if err != nil {
		return nil, err
	}

	validationErrors, err := meter.Int64Counter(
		"form_validation_errors",
		metric.WithDescription("Field errors reported by form validation"),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		RequestsTotal:    requestsTotal,
		RequestDuration:  requestDuration,
		RequestsInFlight: requestsInFlight,
		Validations:      validations,
		ValidationErrors: validationErrors,
		registry:         registry,
	}, nil
}

// RecordValidation counts one validation run and each field that failed in it.
func (p *Provider) RecordValidation(ctx context.Context, approach string, errs validator.Errors) {
	outcome := "valid"
	if len(errs) > 0 {
		outcome = "invalid"
	}
	p.Validations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("approach", approach),
		attribute.String("outcome", outcome),
	))
	for field := range errs {
		p.ValidationErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("approach", approach),
			attribute.String("field", field),
		))
	}
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
