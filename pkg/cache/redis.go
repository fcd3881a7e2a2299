// Package cache wraps Redis for response caching and pre-generated data
// pools. The cache is strictly best-effort: a Redis outage disables it and
// every operation degrades to a no-op rather than failing the request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	rdb        *redis.Client
	defaultTTL time.Duration
}

// New builds a client from a redis URL. Connect must still be called.
func New(url string, defaultTTL time.Duration) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return &Client{
		rdb:        redis.NewClient(opts),
		defaultTTL: defaultTTL,
	}, nil
}

// Connect pings the server. On failure the client disables itself and
// requests proceed uncached.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		slog.Error("redis connection failed", "error", err)
		c.rdb = nil
		return err
	}
	slog.Info("redis connected")
	return nil
}

func (c *Client) Disconnect() error {
	if c.rdb == nil {
		return nil
	}
	err := c.rdb.Close()
	c.rdb = nil
	slog.Info("redis disconnected")
	return err
}

// Enabled reports whether the cache survived Connect.
func (c *Client) Enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	if !c.Enabled() {
		return "", false
	}

	value, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		slog.Debug("cache miss", "key", key)
		return "", false
	}
	if err != nil {
		slog.Error("cache get failed", "key", key, "error", err)
		return "", false
	}
	slog.Debug("cache hit", "key", key)
	return value, true
}

// Set stores a value with the given TTL; zero means the default TTL.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Error("cache set failed", "key", key, "error", err)
		return
	}
	slog.Debug("cache set", "key", key, "ttl", ttl)
}

func (c *Client) Delete(ctx context.Context, key string) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Error("cache delete failed", "key", key, "error", err)
		return
	}
	slog.Debug("cache deleted", "key", key)
}

// GetFromPool pops up to count items from the named pool. The pool may
// hold fewer; callers top up with fresh generation.
func (c *Client) GetFromPool(ctx context.Context, pool string, count int) []map[string]any {
	if !c.Enabled() {
		return nil
	}

	key := poolKey(pool)
	items, err := c.rdb.LRange(ctx, key, 0, int64(count-1)).Result()
	if err != nil {
		slog.Error("pool get failed", "pool", pool, "error", err)
		return nil
	}

	if len(items) > 0 {
		if err := c.rdb.LTrim(ctx, key, int64(len(items)), -1).Err(); err != nil {
			slog.Error("pool trim failed", "pool", pool, "error", err)
		}
	}

	parsed := make([]map[string]any, 0, len(items))
	for _, item := range items {
		var m map[string]any
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		parsed = append(parsed, m)
	}
	slog.Debug("pool get", "pool", pool, "requested", count, "retrieved", len(parsed))
	return parsed
}

// AddToPool appends items, setting the pool TTL on first write.
func (c *Client) AddToPool(ctx context.Context, pool string, data []map[string]any) {
	if !c.Enabled() || len(data) == 0 {
		return
	}

	key := poolKey(pool)
	serialized := make([]any, 0, len(data))
	for _, item := range data {
		b, err := json.Marshal(item)
		if err != nil {
			continue
		}
		serialized = append(serialized, string(b))
	}
	if len(serialized) == 0 {
		return
	}

	if err := c.rdb.RPush(ctx, key, serialized...).Err(); err != nil {
		slog.Error("pool add failed", "pool", pool, "error", err)
		return
	}

	ttl, err := c.rdb.TTL(ctx, key).Result()
	if err == nil && ttl == -1 {
		c.rdb.Expire(ctx, key, c.defaultTTL)
	}
	slog.Debug("pool add", "pool", pool, "count", len(data))
}

func (c *Client) PoolSize(ctx context.Context, pool string) int {
	if !c.Enabled() {
		return 0
	}
	size, err := c.rdb.LLen(ctx, poolKey(pool)).Result()
	if err != nil {
		slog.Error("pool size failed", "pool", pool, "error", err)
		return 0
	}
	return int(size)
}

func poolKey(pool string) string {
	return "pool:" + pool
}

// BuildKey composes a cache key from the request's identifying parameters,
// with extra params sorted for stability.
func BuildKey(domain, entity string, params map[string]string) string {
	parts := []string{domain, entity}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%s", k, params[k]))
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += ":" + p
	}
	return out
}
