package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKey(t *testing.T) {
	t.Run("base key", func(t *testing.T) {
		assert.Equal(t, "retail:user", BuildKey("retail", "user", nil))
	})

	t.Run("params sorted for stability", func(t *testing.T) {
		key := BuildKey("retail", "order", map[string]string{
			"count":  "10",
			"method": "synthetic",
			"ctx":    "none",
		})
		assert.Equal(t, "retail:order:count:10:ctx:none:method:synthetic", key)
	})

	t.Run("same params in any order give the same key", func(t *testing.T) {
		a := BuildKey("retail", "cart", map[string]string{"a": "1", "b": "2"})
		b := BuildKey("retail", "cart", map[string]string{"b": "2", "a": "1"})
		assert.Equal(t, a, b)
	})
}

func TestClient_DisabledByDefault(t *testing.T) {
	c, err := New("redis://localhost:1", time.Minute)
	require.NoError(t, err)

	// Connect fails against a closed port and the client disables itself.
	assert.Error(t, c.Connect(context.Background()))
	assert.False(t, c.Enabled())

	t.Run("operations degrade to no-ops", func(t *testing.T) {
		ctx := context.Background()
		_, ok := c.Get(ctx, "k")
		assert.False(t, ok)

		c.Set(ctx, "k", "v", 0)
		c.Delete(ctx, "k")

		assert.Empty(t, c.GetFromPool(ctx, "user", 5))
		c.AddToPool(ctx, "user", []map[string]any{{"a": 1}})
		assert.Equal(t, 0, c.PoolSize(ctx, "user"))
	})
}

func TestClient_InvalidURL(t *testing.T) {
	_, err := New("not-a-redis-url", time.Minute)
	assert.Error(t, err)
}

func TestClient_NilSafety(t *testing.T) {
	var c *Client
	assert.False(t, c.Enabled())
}
