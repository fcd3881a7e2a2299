package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	t.Run("disabled returns an inert recorder", func(t *testing.T) {
		m, err := InitMetrics(context.Background(), MetricsConfig{Enabled: false})
		require.NoError(t, err)
		require.NotNil(t, m)

		// All record calls must be safe no-ops on the inert recorder.
		ctx := context.Background()
		m.RecordRequest(ctx, "synthetic", "retail", "user", time.Second, 10, nil)
		m.RecordLLMTokens(ctx, "anthropic", 100)
		m.RecordCoherence(ctx, "cart", 0.9)
		m.RecordCacheLookup(ctx, true)
	})

	t.Run("enabled builds instruments", func(t *testing.T) {
		m, err := InitMetrics(context.Background(), MetricsConfig{Enabled: true})
		require.NoError(t, err)
		require.NotNil(t, m)

		ctx := context.Background()
		m.RecordRequest(ctx, "llm", "retail", "review", 250*time.Millisecond, 5, nil)
		m.RecordRequest(ctx, "llm", "retail", "review", time.Second, 0, assert.AnError)
		m.RecordLLMTokens(ctx, "anthropic", 1200)
		m.RecordLLMTokens(ctx, "anthropic", 0)
		m.RecordCoherence(ctx, "order", 0.85)
		m.RecordCacheLookup(ctx, true)
		m.RecordCacheLookup(ctx, false)
	})
}

func TestPrometheusMetrics_NilReceiver(t *testing.T) {
	var m *PrometheusMetrics
	ctx := context.Background()

	m.RecordRequest(ctx, "synthetic", "retail", "user", time.Second, 1, nil)
	m.RecordLLMTokens(ctx, "anthropic", 10)
	m.RecordCoherence(ctx, "cart", 0.5)
	m.RecordCacheLookup(ctx, false)
}

func TestNoopMetrics(t *testing.T) {
	var m Metrics = NoopMetrics{}
	ctx := context.Background()

	m.RecordRequest(ctx, "synthetic", "retail", "user", time.Second, 1, nil)
	m.RecordLLMTokens(ctx, "anthropic", 10)
	m.RecordCoherence(ctx, "cart", 0.5)
	m.RecordCacheLookup(ctx, true)
}

func TestGlobalMetrics(t *testing.T) {
	defer SetGlobalMetrics(nil)

	assert.Nil(t, GetGlobalMetrics())

	m := &PrometheusMetrics{}
	SetGlobalMetrics(m)
	assert.Same(t, Metrics(m), GetGlobalMetrics())
}
