package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter on a dedicated
// registry. Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(cfg MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create prometheus exporter for %s: %w", cfg.ServiceName, err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})

	return provider, handler, nil
}

// ---------------------------------------------------------------------------
// Ledger engine instruments
// ---------------------------------------------------------------------------

// EngineMetrics records ledger computations: how long they took, how many
// months they produced and whether they failed.
type EngineMetrics struct {
	duration     metric.Float64Histogram
	months       metric.Int64Histogram
	computations metric.Int64Counter
}

// NewEngineMetrics registers the engine instruments on the given provider.
func NewEngineMetrics(provider metric.MeterProvider) (*EngineMetrics, error) {
	meter := provider.Meter("github.com/bibbank/mortgage-service/engine")

	duration, err := meter.Float64Histogram("mortgage.ledger.duration",
		metric.WithDescription("Time spent computing a ledger operation."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	months, err := meter.Int64Histogram("mortgage.ledger.months",
		metric.WithDescription("Number of ledger months computed per operation."),
		metric.WithUnit("{month}"),
		metric.WithExplicitBucketBoundaries(12, 60, 120, 180, 240, 300, 360, 480, 600),
	)
	if err != nil {
		return nil, fmt.Errorf("create months histogram: %w", err)
	}

	computations, err := meter.Int64Counter("mortgage.ledger.computations",
		metric.WithDescription("Ledger operations by outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("create computations counter: %w", err)
	}

	return &EngineMetrics{
		duration:     duration,
		months:       months,
		computations: computations,
	}, nil
}

// RecordComputation records one engine operation.
func (m *EngineMetrics) RecordComputation(ctx context.Context, operation string, months int, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)

	m.duration.Record(ctx, elapsed.Seconds(), attrs)
	m.computations.Add(ctx, 1, attrs)
	if err == nil {
		m.months.Record(ctx, int64(months), metric.WithAttributes(attribute.String("operation", operation)))
	}
}
