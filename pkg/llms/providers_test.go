package llms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rateLimitOnce replies 429 with a short Retry-After on the first call and
// the given body afterwards, counting attempts.
func rateLimitOnce(body string, attempts *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}
}

func TestAnthropicProvider_RetriesRateLimitByDefault(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(rateLimitOnce(`{
		"id": "msg_1",
		"content": [{"type": "text", "text": "[]"}],
		"usage": {"input_tokens": 10, "output_tokens": 5}
	}`, &attempts))
	defer server.Close()

	// No MaxRetries set: the constructor's default must keep retrying.
	p, err := NewAnthropicProvider(AnthropicConfig{
		APIKey: "test-key",
		Model:  "claude-test",
		Host:   server.URL,
	})
	require.NoError(t, err)

	text, tokens, err := p.Generate(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "[]", text)
	assert.Equal(t, 15, tokens)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestOpenAIProvider_RetriesRateLimitByDefault(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(rateLimitOnce(`{
		"choices": [{"message": {"role": "assistant", "content": "[]"}}],
		"usage": {"total_tokens": 15}
	}`, &attempts))
	defer server.Close()

	p, err := NewOpenAIProvider(OpenAIConfig{
		BaseURL: server.URL,
		Model:   "llama-test",
	})
	require.NoError(t, err)

	text, tokens, err := p.Generate(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "[]", text)
	assert.Equal(t, 15, tokens)
	assert.Equal(t, int32(2), attempts.Load())
}
