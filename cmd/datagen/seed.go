package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/qaforge/datagen/pkg/cache"
	"github.com/qaforge/datagen/pkg/config"
	"github.com/qaforge/datagen/pkg/databases"
	"github.com/qaforge/datagen/pkg/generate"
	"github.com/qaforge/datagen/pkg/schema"
)

// SeedCmd populates the vector store with a synthetic starter corpus so
// the retrieval path has patterns to draw from on a fresh deployment.
type SeedCmd struct {
	PerEntity int  `name:"per-entity" help:"Patterns to seed per entity." default:"20"`
	Pools     bool `help:"Also fill the Redis pre-generated pools." default:"true" negatable:""`
}

// seededEntities maps each collection to the entities whose patterns it
// receives. Defect patterns lean on payment and order edge shapes.
var seededEntities = map[string][]string{
	databases.CollectionPatterns: {"user", "cart", "order", "product", "review"},
	databases.CollectionDefects:  {"payment", "order"},
	databases.CollectionProd:     {"user", "order"},
}

func (c *SeedCmd) Run(cli *CLI) error {
	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store := buildStore(cfg)
	if store == nil {
		return fmt.Errorf("no vector store configured")
	}
	if err := store.Connect(ctx); err != nil {
		return fmt.Errorf("vector store connect failed: %w", err)
	}
	defer store.Disconnect()

	registry := schema.NewRegistry()
	gen := generate.NewSyntheticGenerator()

	for collection, entities := range seededEntities {
		items := make(map[string]map[string]any)
		for _, entity := range entities {
			sch, ok := registry.Get(entity)
			if !ok {
				continue
			}
			result, err := gen.Generate(ctx, &generate.Request{
				RequestID: "seed",
				Domain:    "retail",
				Entity:    entity,
				Count:     c.PerEntity,
			}, sch)
			if err != nil {
				return fmt.Errorf("seed generation failed for %s: %w", entity, err)
			}
			property := payloadPropertyFor(collection)
			for _, rec := range result.Records {
				body, err := json.Marshal(rec)
				if err != nil {
					continue
				}
				items[uuid.NewString()] = map[string]any{
					"entity":  entity,
					property: string(body),
				}
			}
		}

		if err := store.BatchInsert(ctx, collection, items); err != nil {
			return fmt.Errorf("seed insert into %s failed: %w", collection, err)
		}
		count, err := store.Count(ctx, collection)
		if err != nil {
			slog.Warn("count after seed failed", "collection", collection, "error", err)
			count = len(items)
		}
		slog.Info("collection seeded", "collection", collection, "inserted", len(items), "total", count)
	}

	if c.Pools {
		c.seedPools(ctx, cfg, registry, gen)
	}
	return nil
}

// seedPools pre-fills the Redis record pools for the fast path. Skipped
// silently when Redis is down.
func (c *SeedCmd) seedPools(ctx context.Context, cfg *config.Settings, registry *schema.Registry, gen *generate.SyntheticGenerator) {
	client, err := cache.New(cfg.RedisURL, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	if err != nil || client.Connect(ctx) != nil {
		slog.Warn("redis unavailable, skipping pool seed")
		return
	}
	defer client.Disconnect()

	for _, entity := range []string{"user", "cart", "order", "payment", "product", "review"} {
		sch, ok := registry.Get(entity)
		if !ok {
			continue
		}
		result, err := gen.Generate(ctx, &generate.Request{
			RequestID: "seed",
			Domain:    "retail",
			Entity:    entity,
			Count:     c.PerEntity,
		}, sch)
		if err != nil {
			continue
		}
		client.AddToPool(ctx, entity, result.RecordMaps())
		slog.Info("pool seeded", "entity", entity, "size", client.PoolSize(ctx, entity))
	}
}

func payloadPropertyFor(collection string) string {
	switch collection {
	case databases.CollectionDefects:
		return "trigger_data"
	case databases.CollectionProd:
		return "anonymized_data"
	default:
		return "data"
	}
}
