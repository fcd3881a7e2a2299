package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAnthropicHeaders(t *testing.T) {
	t.Run("empty headers", func(t *testing.T) {
		info := ParseAnthropicHeaders(http.Header{})
		assert.Equal(t, RateLimitInfo{}, info)
	})

	t.Run("retry-after seconds", func(t *testing.T) {
		h := http.Header{}
		h.Set("retry-after", "30")
		info := ParseAnthropicHeaders(h)
		assert.Equal(t, 30*time.Second, info.RetryAfter)
	})

	t.Run("reset time in RFC3339", func(t *testing.T) {
		reset := time.Now().Add(time.Minute).UTC().Truncate(time.Second)
		h := http.Header{}
		h.Set("anthropic-ratelimit-requests-reset", reset.Format(time.RFC3339))
		info := ParseAnthropicHeaders(h)
		assert.Equal(t, reset.Unix(), info.ResetTime)
	})

	t.Run("remaining counts", func(t *testing.T) {
		h := http.Header{}
		h.Set("anthropic-ratelimit-requests-remaining", "42")
		h.Set("anthropic-ratelimit-input-tokens-remaining", "9000")
		info := ParseAnthropicHeaders(h)
		assert.Equal(t, 42, info.RequestsRemaining)
		assert.Equal(t, 9000, info.TokensRemaining)
	})

	t.Run("malformed values ignored", func(t *testing.T) {
		h := http.Header{}
		h.Set("retry-after", "soon")
		h.Set("anthropic-ratelimit-requests-reset", "not-a-time")
		info := ParseAnthropicHeaders(h)
		assert.Equal(t, RateLimitInfo{}, info)
	})
}

func TestParseOpenAIHeaders(t *testing.T) {
	t.Run("retry-after seconds", func(t *testing.T) {
		h := http.Header{}
		h.Set("Retry-After", "5")
		info := ParseOpenAIHeaders(h)
		assert.Equal(t, 5*time.Second, info.RetryAfter)
	})

	t.Run("unix reset time", func(t *testing.T) {
		h := http.Header{}
		h.Set("x-ratelimit-reset-requests", "1735689600")
		info := ParseOpenAIHeaders(h)
		assert.Equal(t, int64(1735689600), info.ResetTime)
	})

	t.Run("remaining counts", func(t *testing.T) {
		h := http.Header{}
		h.Set("x-ratelimit-remaining-requests", "7")
		h.Set("x-ratelimit-remaining-tokens", "120000")
		info := ParseOpenAIHeaders(h)
		assert.Equal(t, 7, info.RequestsRemaining)
		assert.Equal(t, 120000, info.TokensRemaining)
	})
}
