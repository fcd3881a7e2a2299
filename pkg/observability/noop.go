package observability

import (
	"context"
	"time"
)

// NoopMetrics satisfies Metrics without recording anything. Used in tests
// and when metrics are disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordRequest(context.Context, string, string, string, time.Duration, int, error) {
}
func (NoopMetrics) RecordLLMTokens(context.Context, string, int)     {}
func (NoopMetrics) RecordCoherence(context.Context, string, float64) {}
func (NoopMetrics) RecordCacheLookup(context.Context, bool)          {}
