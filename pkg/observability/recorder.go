package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	globalMetrics Metrics
	metricsMu     sync.RWMutex
)

type Metrics interface {
	RecordRequest(ctx context.Context, path, domain, entity string, duration time.Duration, records int, err error)
	RecordLLMTokens(ctx context.Context, provider string, tokens int)
	RecordCoherence(ctx context.Context, entity string, score float64)
	RecordCacheLookup(ctx context.Context, hit bool)
}

type PrometheusMetrics struct {
	requestDuration  metric.Float64Histogram
	requestsTotal    metric.Int64Counter
	recordsTotal     metric.Int64Counter
	llmTokensTotal   metric.Int64Counter
	coherenceScore   metric.Float64Histogram
	cacheHitsTotal   metric.Int64Counter
	cacheMissesTotal metric.Int64Counter
}

func NewPrometheusMetrics(
	requestDuration metric.Float64Histogram,
	requestsTotal metric.Int64Counter,
	recordsTotal metric.Int64Counter,
	llmTokensTotal metric.Int64Counter,
	coherenceScore metric.Float64Histogram,
	cacheHitsTotal metric.Int64Counter,
	cacheMissesTotal metric.Int64Counter,
) *PrometheusMetrics {
	return &PrometheusMetrics{
		requestDuration:  requestDuration,
		requestsTotal:    requestsTotal,
		recordsTotal:     recordsTotal,
		llmTokensTotal:   llmTokensTotal,
		coherenceScore:   coherenceScore,
		cacheHitsTotal:   cacheHitsTotal,
		cacheMissesTotal: cacheMissesTotal,
	}
}

func (m *PrometheusMetrics) RecordRequest(ctx context.Context, path, domain, entity string, duration time.Duration, records int, err error) {
	if m == nil || m.requestDuration == nil || m.requestsTotal == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
	}
	attrs := []attribute.KeyValue{
		attribute.String("path", path),
		attribute.String("domain", domain),
		attribute.String("entity", entity),
		attribute.String("status", status),
	}

	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("path", path)))
	m.requestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))

	if records > 0 && m.recordsTotal != nil {
		m.recordsTotal.Add(ctx, int64(records), metric.WithAttributes(
			attribute.String("path", path),
			attribute.String("entity", entity),
		))
	}
}

func (m *PrometheusMetrics) RecordLLMTokens(ctx context.Context, provider string, tokens int) {
	if m == nil || m.llmTokensTotal == nil || tokens <= 0 {
		return
	}
	m.llmTokensTotal.Add(ctx, int64(tokens), metric.WithAttributes(
		attribute.String("provider", provider),
	))
}

func (m *PrometheusMetrics) RecordCoherence(ctx context.Context, entity string, score float64) {
	if m == nil || m.coherenceScore == nil {
		return
	}
	m.coherenceScore.Record(ctx, score, metric.WithAttributes(
		attribute.String("entity", entity),
	))
}

func (m *PrometheusMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	if hit {
		if m.cacheHitsTotal != nil {
			m.cacheHitsTotal.Add(ctx, 1)
		}
		return
	}
	if m.cacheMissesTotal != nil {
		m.cacheMissesTotal.Add(ctx, 1)
	}
}

func SetGlobalMetrics(m Metrics) {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	globalMetrics = m
}

func GetGlobalMetrics() Metrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return globalMetrics
}
