package generate

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/datagen/pkg/databases"
	"github.com/qaforge/datagen/pkg/record"
)

// fakeStore serves canned search results and remembers the last query.
type fakeStore struct {
	results        []databases.SearchResult
	searchErr      error
	lastCollection string
	lastQuery      string
	lastTopK       int
}

func (f *fakeStore) Connect(context.Context) error { return nil }
func (f *fakeStore) Disconnect() error             { return nil }

func (f *fakeStore) Search(_ context.Context, collection, query string, topK int) ([]databases.SearchResult, error) {
	f.lastCollection = collection
	f.lastQuery = query
	f.lastTopK = topK
	return f.results, f.searchErr
}

func (f *fakeStore) Insert(context.Context, string, string, map[string]any) error { return nil }
func (f *fakeStore) BatchInsert(context.Context, string, map[string]map[string]any) error {
	return nil
}
func (f *fakeStore) Count(context.Context, string) (int, error)    { return 0, nil }
func (f *fakeStore) Exists(context.Context, string) (bool, error)  { return true, nil }
func (f *fakeStore) DeleteCollection(context.Context, string) error { return nil }

func patternResult(id string, data map[string]any) databases.SearchResult {
	return databases.SearchResult{ID: id, Score: 0.9, Data: data}
}

func TestRetrievalGenerator_Basic(t *testing.T) {
	store := &fakeStore{results: []databases.SearchResult{
		patternResult("p1", map[string]any{"data": map[string]any{
			"order_id":   "ORD-2026-0001234",
			"status":     "delivered",
			"total":      54.99,
			"created_at": "2025-11-02T09:00:00Z",
		}}),
	}}
	g := NewRetrievalGenerator(store, 5)

	result, err := g.Generate(context.Background(), &Request{
		RequestID: "r1",
		Domain:    "retail",
		Entity:    "order",
		Count:     4,
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.Records, 4)

	assert.Equal(t, "retrieval", result.Metadata[MetaPath])
	assert.Equal(t, databases.CollectionPatterns, result.Metadata[MetaCollection])
	assert.Equal(t, 1, result.Metadata[MetaPatterns])
	assert.Equal(t, 5, store.lastTopK)

	for i, rec := range result.Records {
		idx, _ := rec.Get(record.KeyIndex)
		assert.Equal(t, i, idx)

		// Static fields carry over from the template.
		status, _ := rec.Get("status")
		assert.Equal(t, "delivered", status)
	}
}

func TestRetrievalGenerator_VariesIdentifiers(t *testing.T) {
	store := &fakeStore{results: []databases.SearchResult{
		patternResult("p1", map[string]any{"data": map[string]any{
			"order_id":   "ORD-2026-0001234",
			"uuid":       "11111111-1111-1111-1111-111111111111",
			"created_at": "2025-11-02T09:00:00Z",
		}}),
	}}
	g := NewRetrievalGenerator(store, 3)

	result, err := g.Generate(context.Background(), &Request{Entity: "order", Count: 3}, nil)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, rec := range result.Records {
		id, _ := rec.Get("order_id")
		s := id.(string)

		// Prefix and year survive; the numeric tail is regenerated.
		assert.True(t, strings.HasPrefix(s, "ORD-2026-"), "id %s", s)
		assert.NotEqual(t, "ORD-2026-0001234", s)
		assert.Regexp(t, `^ORD-2026-\d{7}$`, s)
		assert.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true

		u, _ := rec.Get("uuid")
		assert.NotEqual(t, "11111111-1111-1111-1111-111111111111", u)

		ts, _ := rec.Get("created_at")
		assert.NotEqual(t, "2025-11-02T09:00:00Z", ts)
	}
}

func TestRetrievalGenerator_AllocationAcrossPatterns(t *testing.T) {
	mkResult := func(n int) databases.SearchResult {
		return patternResult(fmt.Sprintf("p%d", n), map[string]any{"data": map[string]any{
			"source": fmt.Sprintf("pattern-%d", n),
		}})
	}
	store := &fakeStore{results: []databases.SearchResult{mkResult(0), mkResult(1), mkResult(2)}}
	g := NewRetrievalGenerator(store, 5)

	// 8 records over 3 patterns: 3, 3, 2 with the remainder going to the
	// higher ranked patterns.
	result, err := g.Generate(context.Background(), &Request{Count: 8}, nil)
	require.NoError(t, err)
	require.Len(t, result.Records, 8)

	counts := map[string]int{}
	for _, rec := range result.Records {
		src, _ := rec.Get("source")
		counts[src.(string)]++
	}
	assert.Equal(t, map[string]int{"pattern-0": 3, "pattern-1": 3, "pattern-2": 2}, counts)
}

func TestRetrievalGenerator_TruncatesToCount(t *testing.T) {
	store := &fakeStore{results: []databases.SearchResult{
		patternResult("p1", map[string]any{"data": map[string]any{"a": 1}}),
		patternResult("p2", map[string]any{"data": map[string]any{"a": 2}}),
		patternResult("p3", map[string]any{"data": map[string]any{"a": 3}}),
	}}
	g := NewRetrievalGenerator(store, 5)

	// Fewer records than patterns: per-pattern minimum of one would
	// overshoot, so the result is cut back.
	result, err := g.Generate(context.Background(), &Request{Count: 2}, nil)
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
}

func TestRetrievalGenerator_EmptyCorpus(t *testing.T) {
	g := NewRetrievalGenerator(&fakeStore{}, 5)

	result, err := g.Generate(context.Background(), &Request{Entity: "order", Count: 5}, nil)
	require.NoError(t, err)

	// No records and no error: the caller decides whether to fall back.
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.Metadata[MetaPatterns])
	assert.Equal(t, "retrieval", result.Metadata[MetaPath])
}

func TestRetrievalGenerator_SearchFailure(t *testing.T) {
	store := &fakeStore{searchErr: fmt.Errorf("connection refused")}
	g := NewRetrievalGenerator(store, 5)

	_, err := g.Generate(context.Background(), &Request{Count: 5}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern search failed")
}

func TestRetrievalGenerator_CollectionSelection(t *testing.T) {
	g := NewRetrievalGenerator(&fakeStore{}, 5)

	assert.Equal(t, databases.CollectionDefects, g.Collection(&Request{DefectTriggering: true}))
	assert.Equal(t, databases.CollectionProd, g.Collection(&Request{ProductionLike: true}))
	assert.Equal(t, databases.CollectionPatterns, g.Collection(&Request{LearnFromHistory: true}))

	// Defect triggering outranks production-like.
	assert.Equal(t, databases.CollectionDefects, g.Collection(&Request{DefectTriggering: true, ProductionLike: true}))
}

func TestRetrievalGenerator_QueryComposition(t *testing.T) {
	store := &fakeStore{}
	g := NewRetrievalGenerator(store, 5)

	_, err := g.Generate(context.Background(), &Request{
		Domain:  "retail",
		Entity:  "cart",
		Context: "abandoned checkouts",
		Count:   1,
		Scenarios: []Scenario{
			{Name: "x", Count: 1, Description: "high value baskets"},
		},
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, store.lastQuery, "domain: retail")
	assert.Contains(t, store.lastQuery, "entity: cart")
	assert.Contains(t, store.lastQuery, "abandoned checkouts")
	assert.Contains(t, store.lastQuery, "high value baskets")
}

func TestPatternBody(t *testing.T) {
	t.Run("json string payload decodes", func(t *testing.T) {
		body := patternBody(patternResult("p", map[string]any{
			"entity": "order",
			"data":   `{"order_id":"ORD-2026-0000001"}`,
		}))
		require.NotNil(t, body)
		assert.Equal(t, "ORD-2026-0000001", body["order_id"])
	})

	t.Run("defect payload key", func(t *testing.T) {
		body := patternBody(patternResult("p", map[string]any{
			"trigger_data": map[string]any{"amount": -1},
		}))
		require.NotNil(t, body)
		assert.Equal(t, -1, body["amount"])
	})

	t.Run("flat payload falls through", func(t *testing.T) {
		body := patternBody(patternResult("p", map[string]any{"order_id": "ORD-1"}))
		require.NotNil(t, body)
		assert.Equal(t, "ORD-1", body["order_id"])
	})

	t.Run("empty payload yields nil", func(t *testing.T) {
		assert.Nil(t, patternBody(patternResult("p", map[string]any{})))
	})
}

func TestVaryID(t *testing.T) {
	t.Run("deterministic per index", func(t *testing.T) {
		assert.Equal(t, varyID("ORD-2026-0001234", 3), varyID("ORD-2026-0001234", 3))
		assert.NotEqual(t, varyID("ORD-2026-0001234", 0), varyID("ORD-2026-0001234", 1))
	})

	t.Run("non-conforming ids pass through", func(t *testing.T) {
		assert.Equal(t, "plain", varyID("plain", 0))
		assert.Equal(t, "A-B", varyID("A-B", 0))
		assert.Equal(t, "A-B-C-D", varyID("A-B-C-D", 0))
	})
}
