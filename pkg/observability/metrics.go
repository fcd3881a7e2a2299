package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// InitMetrics wires the OpenTelemetry meter to the Prometheus registry and
// builds the service instruments. When disabled an inert recorder is
// returned so call sites never nil-check.
func InitMetrics(ctx context.Context, cfg MetricsConfig) (*PrometheusMetrics, error) {
	if !cfg.Enabled {
		return &PrometheusMetrics{}, nil
	}

	promExporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(promExporter),
	)

	meter := meterProvider.Meter("datagen")

	requestDuration, err := meter.Float64Histogram(
		"datagen_request_duration_seconds",
		metric.WithDescription("Generation request duration in seconds"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	requestsTotal, err := meter.Int64Counter(
		"datagen_requests_total",
		metric.WithDescription("Total generation requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create requests counter: %w", err)
	}

	recordsTotal, err := meter.Int64Counter(
		"datagen_records_generated_total",
		metric.WithDescription("Total records generated"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create records counter: %w", err)
	}

	llmTokensTotal, err := meter.Int64Counter(
		"datagen_llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm tokens counter: %w", err)
	}

	coherenceScore, err := meter.Float64Histogram(
		"datagen_coherence_score",
		metric.WithDescription("Coherence score of generated record batches"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create coherence histogram: %w", err)
	}

	cacheHitsTotal, err := meter.Int64Counter(
		"datagen_cache_hits_total",
		metric.WithDescription("Total cache hits"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache hits counter: %w", err)
	}

	cacheMissesTotal, err := meter.Int64Counter(
		"datagen_cache_misses_total",
		metric.WithDescription("Total cache misses"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache misses counter: %w", err)
	}

	return NewPrometheusMetrics(
		requestDuration,
		requestsTotal,
		recordsTotal,
		llmTokensTotal,
		coherenceScore,
		cacheHitsTotal,
		cacheMissesTotal,
	), nil
}
