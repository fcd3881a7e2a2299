package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qaforge/datagen/pkg/databases"
	"github.com/qaforge/datagen/pkg/record"
	"github.com/qaforge/datagen/pkg/schema"
)

// Dynamic fields rewritten when a retrieved pattern is turned into a new
// record.
var (
	variedIDFields        = []string{"cart_id", "order_id", "payment_id", "user_id", "review_id", "transaction_id"}
	variedTimestampFields = []string{"created_at", "updated_at", "modified_at", "timestamp"}
)

// RetrievalGenerator composes new records from patterns stored in the
// vector corpus. Retrieved templates keep their shape; identifiers and
// timestamps are regenerated so each variation is a distinct record.
type RetrievalGenerator struct {
	store databases.VectorStore
	topK  int
}

func NewRetrievalGenerator(store databases.VectorStore, topK int) *RetrievalGenerator {
	if topK <= 0 {
		topK = 5
	}
	return &RetrievalGenerator{store: store, topK: topK}
}

func (g *RetrievalGenerator) Supports(req *Request) bool {
	if req.LearnFromHistory || req.DefectTriggering || req.ProductionLike {
		return true
	}
	return hasHint(lowerHints(req.Hints), "similar", "pattern", "historical", "production")
}

// Collection picks the corpus for a request: defect patterns for
// defect-triggering, production samples for production-like, otherwise
// curated test data patterns.
func (g *RetrievalGenerator) Collection(req *Request) string {
	switch {
	case req.DefectTriggering:
		return databases.CollectionDefects
	case req.ProductionLike:
		return databases.CollectionProd
	default:
		return databases.CollectionPatterns
	}
}

func (g *RetrievalGenerator) Generate(ctx context.Context, req *Request, _ *schema.Schema) (*Result, error) {
	start := time.Now()
	collection := g.Collection(req)
	query := buildQuery(req)

	patterns, err := g.store.Search(ctx, collection, query, g.topK)
	if err != nil {
		return nil, fmt.Errorf("pattern search failed: %w", err)
	}

	if len(patterns) == 0 {
		slog.Warn("no patterns found for request",
			"request_id", req.RequestID,
			"collection", collection,
			"query", query,
		)
		return &Result{
			Metadata: map[string]any{
				MetaPath:       MethodRetrieval.String(),
				MetaCollection: collection,
				MetaPatterns:   0,
				MetaTimeMS:     float64(time.Since(start).Microseconds()) / 1000,
			},
		}, nil
	}

	// Spread the requested count across patterns; earlier (higher
	// ranked) patterns absorb the remainder.
	perPattern := req.Count / len(patterns)
	if perPattern < 1 {
		perPattern = 1
	}
	remainder := req.Count % len(patterns)

	var records []*record.Record
	for i, pattern := range patterns {
		template := patternBody(pattern)
		if template == nil {
			continue
		}

		n := perPattern
		if i < remainder {
			n++
		}
		for j := 0; j < n; j++ {
			records = append(records, g.vary(template, len(records)))
		}
	}

	if len(records) > req.Count {
		records = records[:req.Count]
	}
	for _, rec := range records {
		if !rec.Has(record.KeyScenario) {
			rec.Set(record.KeyScenario, "default")
		}
	}
	stampIndexes(records)

	durationMS := float64(time.Since(start).Microseconds()) / 1000
	slog.Info("retrieval generation complete",
		"request_id", req.RequestID,
		"collection", collection,
		"patterns", len(patterns),
		"count", len(records),
		"duration_ms", durationMS,
	)

	return &Result{
		Records: records,
		Metadata: map[string]any{
			MetaPath:       MethodRetrieval.String(),
			MetaCollection: collection,
			MetaPatterns:   len(patterns),
			MetaTimeMS:     durationMS,
		},
	}, nil
}

// buildQuery concatenates the request's descriptive parts into a keyword
// query, falling back to a generic entity query.
func buildQuery(req *Request) string {
	var parts []string
	if req.Domain != "" {
		parts = append(parts, "domain: "+req.Domain)
	}
	if req.Entity != "" {
		parts = append(parts, "entity: "+req.Entity)
	}
	if req.Context != "" {
		parts = append(parts, req.Context)
	}
	for _, sc := range req.Scenarios {
		if sc.Description != "" {
			parts = append(parts, sc.Description)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s %s test data", req.Domain, req.Entity)
	}
	return strings.Join(parts, " ")
}

// patternBody extracts the record template from a search result. Bodies
// live under collection-specific payload keys and may arrive either as
// parsed objects or as JSON strings.
func patternBody(result databases.SearchResult) map[string]any {
	for _, key := range []string{"data", "trigger_data", "anonymized_data"} {
		raw, ok := result.Data[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case map[string]any:
			return v
		case string:
			var m map[string]any
			if err := json.Unmarshal([]byte(v), &m); err == nil {
				return m
			}
		}
	}
	// Some corpora store fields directly on the object.
	if len(result.Data) > 0 {
		return result.Data
	}
	return nil
}

// vary copies the template and rewrites its dynamic fields so the output
// is a fresh record rather than a replay.
func (g *RetrievalGenerator) vary(template map[string]any, index int) *record.Record {
	rec := record.New()
	now := time.Now().UTC().Format(time.RFC3339)

	for key, value := range template {
		switch {
		case isVariedID(key):
			if s, ok := value.(string); ok {
				rec.Set(key, varyID(s, index))
				continue
			}
		case isVariedTimestamp(key):
			rec.Set(key, now)
			continue
		case key == "uuid" || key == "id":
			rec.Set(key, uuid.NewString())
			continue
		}
		rec.Set(key, value)
	}
	return rec
}

func isVariedID(key string) bool {
	for _, f := range variedIDFields {
		if key == f {
			return true
		}
	}
	return false
}

func isVariedTimestamp(key string) bool {
	for _, f := range variedTimestampFields {
		if key == f {
			return true
		}
	}
	return false
}

// varyID replaces the trailing numeric group of a PREFIX-YEAR-NNNNNNN
// style identifier with a value derived deterministically from the source
// id and variation index.
func varyID(original string, index int) string {
	parts := strings.Split(original, "-")
	if len(parts) != 3 {
		return original
	}

	h := fnv.New32a()
	fmt.Fprintf(h, "%s%d", original, index)
	num := h.Sum32() % 10000000

	parts[2] = fmt.Sprintf("%07d", num)
	return strings.Join(parts, "-")
}
