package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/qaforge/datagen/pkg/config"
	"github.com/qaforge/datagen/pkg/databases"
	"github.com/qaforge/datagen/pkg/generate"
	"github.com/qaforge/datagen/pkg/pb"
)

// stubProvider returns a fixed completion.
type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Generate(context.Context, string, string) (string, int, error) {
	return p.reply, 25, p.err
}

func (p *stubProvider) Close() error { return nil }

// stubStore is a vector store with scriptable connectivity and results.
type stubStore struct {
	connectErr  error
	results     []databases.SearchResult
	connects    int
	disconnects int
}

func (f *stubStore) Connect(context.Context) error {
	f.connects++
	return f.connectErr
}

func (f *stubStore) Disconnect() error {
	f.disconnects++
	return nil
}

func (f *stubStore) Search(context.Context, string, string, int) ([]databases.SearchResult, error) {
	return f.results, nil
}

func (f *stubStore) Insert(context.Context, string, string, map[string]any) error { return nil }
func (f *stubStore) BatchInsert(context.Context, string, map[string]map[string]any) error {
	return nil
}
func (f *stubStore) Count(context.Context, string) (int, error)     { return len(f.results), nil }
func (f *stubStore) Exists(context.Context, string) (bool, error)   { return true, nil }
func (f *stubStore) DeleteCollection(context.Context, string) error { return nil }

// captureStream collects chunks sent through the streaming RPC.
type captureStream struct {
	grpc.ServerStream
	ctx    context.Context
	chunks []*pb.DataChunk
}

func newCaptureStream() *captureStream {
	return &captureStream{ctx: context.Background()}
}

func (s *captureStream) Send(chunk *pb.DataChunk) error {
	s.chunks = append(s.chunks, chunk)
	return nil
}

func (s *captureStream) Context() context.Context     { return s.ctx }
func (s *captureStream) SetHeader(metadata.MD) error  { return nil }
func (s *captureStream) SendHeader(metadata.MD) error { return nil }
func (s *captureStream) SetTrailer(metadata.MD)       {}
func (s *captureStream) SendMsg(any) error            { return nil }
func (s *captureStream) RecvMsg(any) error            { return nil }

// fakePool is an in-memory record pool; GetFromPool consumes entries.
type fakePool struct {
	records []map[string]any
	gets    int
}

func (p *fakePool) Enabled() bool { return true }

func (p *fakePool) PoolSize(context.Context, string) int { return len(p.records) }

func (p *fakePool) GetFromPool(_ context.Context, _ string, count int) []map[string]any {
	p.gets++
	if count > len(p.records) {
		count = len(p.records)
	}
	out := p.records[:count]
	p.records = p.records[count:]
	return out
}

// spyMetrics counts cache lookups; everything else is discarded.
type spyMetrics struct {
	hits, misses int
}

func (m *spyMetrics) RecordRequest(context.Context, string, string, string, time.Duration, int, error) {
}
func (m *spyMetrics) RecordLLMTokens(context.Context, string, int)  {}
func (m *spyMetrics) RecordCoherence(context.Context, string, float64) {}

func (m *spyMetrics) RecordCacheLookup(_ context.Context, hit bool) {
	if hit {
		m.hits++
	} else {
		m.misses++
	}
}

func decodeRecords(t *testing.T, data string) []map[string]any {
	t.Helper()
	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &records))
	return records
}

func TestGenerateData_SyntheticHappyPath(t *testing.T) {
	svc := New(Options{Synthetic: generate.NewSyntheticGeneratorSeeded(42)})

	resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
		RequestId: "req-1",
		Domain:    "retail",
		Entity:    "user",
		Count:     3,
	})
	require.NoError(t, err)

	assert.True(t, resp.GetSuccess())
	assert.Equal(t, "req-1", resp.GetRequestId())
	assert.Empty(t, resp.GetError())
	assert.Equal(t, int32(3), resp.GetRecordCount())

	records := decodeRecords(t, resp.GetData())
	require.Len(t, records, 3)

	seen := map[float64]bool{}
	for _, rec := range records {
		assert.Contains(t, rec, "user_id")
		idx, ok := rec["_index"].(float64)
		require.True(t, ok)
		assert.False(t, seen[idx], "duplicate _index %v", idx)
		seen[idx] = true
	}

	md := resp.GetMetadata()
	require.NotNil(t, md)
	assert.Equal(t, "synthetic", md.GetGenerationPath())
	// Users have no dedicated scorer; the neutral score applies.
	assert.InDelta(t, 0.7, md.GetCoherenceScore(), 1e-9)
	assert.Equal(t, map[string]int32{"default": 3}, md.GetScenarioCounts())
}

func TestGenerateData_GeneratedRequestID(t *testing.T) {
	svc := New(Options{Synthetic: generate.NewSyntheticGeneratorSeeded(1)})

	resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{Entity: "user", Count: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetRequestId())
}

func TestGenerateData_InvalidCount(t *testing.T) {
	svc := New(Options{})

	for _, count := range []int32{0, -5} {
		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId: "bad", Entity: "user", Count: count,
		})
		// Business failures come back in the response, not as RPC errors.
		require.NoError(t, err)
		assert.False(t, resp.GetSuccess())
		assert.Equal(t, "count must be positive", resp.GetError())
		assert.Zero(t, resp.GetRecordCount())
	}
}

func TestGenerateData_SyncLimit(t *testing.T) {
	svc := New(Options{Config: &config.Settings{MaxSyncRecords: 10}})

	resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
		RequestId: "big", Entity: "user", Count: 11,
	})
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
	assert.Equal(t, "Count 11 exceeds max sync limit 10. Use streaming instead.", resp.GetError())
}

func TestGenerateData_Scenarios(t *testing.T) {
	svc := New(Options{Synthetic: generate.NewSyntheticGeneratorSeeded(7)})

	resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
		RequestId: "sc",
		Entity:    "user",
		Count:     10,
		Scenarios: []*pb.Scenario{
			{Name: "regular", Count: 7},
			{Name: "vip", Count: 3, Overrides: map[string]string{"loyalty_tier": "Gold"}},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())

	assert.Equal(t, map[string]int32{"regular": 7, "vip": 3}, resp.GetMetadata().GetScenarioCounts())

	for _, rec := range decodeRecords(t, resp.GetData()) {
		if rec["_scenario"] == "vip" {
			assert.Equal(t, "Gold", rec["loyalty_tier"])
		}
	}
}

func TestGenerateData_InlineSchema(t *testing.T) {
	svc := New(Options{Synthetic: generate.NewSyntheticGeneratorSeeded(3)})

	t.Run("inline schema shapes the output", func(t *testing.T) {
		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId: "inline",
			Entity:    "gadget",
			Count:     2,
			InlineSchema: `{
				"name": "gadget",
				"domain": "hardware",
				"description": "Electronic gadget",
				"fields": {
					"gadget_id": {"type": "string", "format": "GDG-{random:5}"},
					"voltage": {"type": "integer", "min": 1, "max": 12}
				}
			}`,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())

		for _, rec := range decodeRecords(t, resp.GetData()) {
			assert.Regexp(t, `^GDG-\d{5}$`, rec["gadget_id"])
			v := rec["voltage"].(float64)
			assert.GreaterOrEqual(t, v, 1.0)
			assert.LessOrEqual(t, v, 12.0)
		}
	})

	t.Run("named inline schema lands in the registry", func(t *testing.T) {
		_, ok := svc.Registry().Get("gadget")
		assert.True(t, ok)
	})

	t.Run("incomplete inline schema is used but not registered", func(t *testing.T) {
		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId: "inline-partial",
			Entity:    "widget",
			Count:     1,
			InlineSchema: `{
				"name": "widget",
				"fields": {"widget_id": {"type": "string"}}
			}`,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())
		assert.Contains(t, decodeRecords(t, resp.GetData())[0], "widget_id")

		_, ok := svc.Registry().Get("widget")
		assert.False(t, ok)
	})

	t.Run("malformed inline schema fails the request", func(t *testing.T) {
		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId:    "broken",
			Entity:       "gadget",
			Count:        1,
			InlineSchema: `{"name": "broken"`,
		})
		require.NoError(t, err)
		assert.False(t, resp.GetSuccess())
		assert.Contains(t, resp.GetError(), "invalid inline schema")
	})
}

func TestGenerateData_MissingSchemaIsSoftFailure(t *testing.T) {
	svc := New(Options{Synthetic: generate.NewSyntheticGeneratorSeeded(5)})

	t.Run("unknown predefined schema", func(t *testing.T) {
		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId: "pre",
			Entity:    "user",
			Count:     2,
			Schema:    &pb.SchemaRef{PredefinedSchema: "no_such_schema"},
		})
		require.NoError(t, err)
		assert.True(t, resp.GetSuccess())
		assert.Equal(t, int32(2), resp.GetRecordCount())
	})

	t.Run("unknown entity generates schemaless", func(t *testing.T) {
		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId: "ent",
			Entity:    "unicorn",
			Count:     2,
		})
		require.NoError(t, err)
		assert.True(t, resp.GetSuccess())

		// Only the bookkeeping fields without a schema to draw from.
		for _, rec := range decodeRecords(t, resp.GetData()) {
			assert.Contains(t, rec, "_scenario")
			assert.Contains(t, rec, "_index")
		}
	})
}

func TestGenerateData_ExplicitMethodHonored(t *testing.T) {
	svc := New(Options{Synthetic: generate.NewSyntheticGeneratorSeeded(9)})

	// Review entities would normally route to the LLM; the explicit
	// synthetic selection overrides that.
	resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
		RequestId:        "explicit",
		Entity:           "review",
		Count:            2,
		GenerationMethod: pb.GenerationMethod_SYNTHETIC,
	})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())
	assert.Equal(t, "synthetic", resp.GetMetadata().GetGenerationPath())
}

func TestGenerateData_LLMNotConfigured(t *testing.T) {
	svc := New(Options{})

	resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
		RequestId:        "llm",
		Entity:           "user",
		Count:            1,
		GenerationMethod: pb.GenerationMethod_LLM,
	})
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
	assert.Equal(t, "no LLM provider configured", resp.GetError())
}

func TestGenerateData_LLMPath(t *testing.T) {
	llm := generate.NewLLMGenerator(&stubProvider{
		reply: `[{"review_id":"REV-0000001","rating":5,"text":"love it"}]`,
	}, nil)
	svc := New(Options{LLM: llm})

	resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
		RequestId: "llm-ok",
		Entity:    "review",
		Count:     1,
		Context:   "reviews for the new running shoe line",
	})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())

	md := resp.GetMetadata()
	assert.Equal(t, "llm", md.GetGenerationPath())
	assert.Equal(t, int32(25), md.GetLlmTokensUsed())
}

func TestGenerateData_RetrievalFallbacks(t *testing.T) {
	t.Run("store unreachable falls back to synthetic", func(t *testing.T) {
		store := &stubStore{connectErr: fmt.Errorf("connection refused")}
		svc := New(Options{
			Synthetic: generate.NewSyntheticGeneratorSeeded(2),
			Retrieval: generate.NewRetrievalGenerator(store, 5),
			Store:     store,
		})

		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId:        "fb1",
			Entity:           "user",
			Count:            3,
			GenerationMethod: pb.GenerationMethod_RETRIEVAL,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())
		assert.Equal(t, "synthetic", resp.GetMetadata().GetGenerationPath())
		assert.Equal(t, int32(3), resp.GetRecordCount())
	})

	t.Run("empty corpus falls back to synthetic", func(t *testing.T) {
		store := &stubStore{}
		svc := New(Options{
			Synthetic: generate.NewSyntheticGeneratorSeeded(2),
			Retrieval: generate.NewRetrievalGenerator(store, 5),
			Store:     store,
		})

		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId:        "fb2",
			Entity:           "user",
			Count:            3,
			LearnFromHistory: true,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())
		assert.Equal(t, "synthetic", resp.GetMetadata().GetGenerationPath())
		assert.Equal(t, 1, store.connects)
		assert.Equal(t, 1, store.disconnects)
	})

	t.Run("populated corpus serves retrieval", func(t *testing.T) {
		store := &stubStore{results: []databases.SearchResult{{
			ID:    "p1",
			Score: 0.9,
			Data: map[string]any{"data": map[string]any{
				"user_id": "USR-1234567",
				"country": "US",
			}},
		}}}
		svc := New(Options{
			Retrieval: generate.NewRetrievalGenerator(store, 5),
			Store:     store,
		})

		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId:        "ret",
			Entity:           "user",
			Count:            2,
			LearnFromHistory: true,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())
		assert.Equal(t, "retrieval", resp.GetMetadata().GetGenerationPath())
		assert.Equal(t, int32(2), resp.GetRecordCount())
	})

	t.Run("no store configured falls back to synthetic", func(t *testing.T) {
		svc := New(Options{Synthetic: generate.NewSyntheticGeneratorSeeded(2)})

		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId:        "fb3",
			Entity:           "user",
			Count:            1,
			GenerationMethod: pb.GenerationMethod_RETRIEVAL,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())
		assert.Equal(t, "synthetic", resp.GetMetadata().GetGenerationPath())
	})
}

func TestGenerateData_HybridDegradesToLLM(t *testing.T) {
	llm := generate.NewLLMGenerator(&stubProvider{reply: `[{"order_id":"ORD-2026-0000001"}]`}, nil)

	t.Run("store unreachable", func(t *testing.T) {
		store := &stubStore{connectErr: fmt.Errorf("down")}
		svc := New(Options{
			LLM:    llm,
			Hybrid: generate.NewHybridGenerator(generate.NewRetrievalGenerator(store, 5), llm),
			Store:  store,
		})

		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId:        "hy1",
			Entity:           "order",
			Count:            1,
			GenerationMethod: pb.GenerationMethod_HYBRID,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())
		assert.Equal(t, "llm", resp.GetMetadata().GetGenerationPath())
	})

	t.Run("no store at all", func(t *testing.T) {
		svc := New(Options{LLM: llm})

		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId:        "hy2",
			Entity:           "order",
			Count:            1,
			GenerationMethod: pb.GenerationMethod_HYBRID,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())
		assert.Equal(t, "llm", resp.GetMetadata().GetGenerationPath())
	})

	t.Run("no llm fails", func(t *testing.T) {
		svc := New(Options{})
		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId:        "hy3",
			Entity:           "order",
			Count:            1,
			GenerationMethod: pb.GenerationMethod_HYBRID,
		})
		require.NoError(t, err)
		assert.False(t, resp.GetSuccess())
		assert.Equal(t, "no LLM provider configured", resp.GetError())
	})
}

func TestGenerateData_RecordPool(t *testing.T) {
	poolUsers := func() []map[string]any {
		return []map[string]any{
			{"user_id": "USR-0000001", "email": "a@example.com"},
			{"user_id": "USR-0000002", "email": "b@example.com"},
			{"user_id": "USR-0000003", "email": "c@example.com"},
		}
	}

	t.Run("pool hit serves pre-generated records", func(t *testing.T) {
		pool := &fakePool{records: poolUsers()}
		spy := &spyMetrics{}
		svc := New(Options{
			Synthetic: generate.NewSyntheticGeneratorSeeded(6),
			Cache:     pool,
			Metrics:   spy,
		})

		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId: "pool1",
			Entity:    "user",
			Count:     2,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())
		assert.Equal(t, "synthetic", resp.GetMetadata().GetGenerationPath())

		records := decodeRecords(t, resp.GetData())
		require.Len(t, records, 2)
		assert.Equal(t, "USR-0000001", records[0]["user_id"])
		assert.Equal(t, "USR-0000002", records[1]["user_id"])
		assert.Equal(t, float64(0), records[0]["_index"])
		assert.Equal(t, "default", records[0]["_scenario"])

		assert.Equal(t, 1, spy.hits)
		assert.Zero(t, spy.misses)
	})

	t.Run("short pool falls through to generation", func(t *testing.T) {
		pool := &fakePool{records: poolUsers()[:1]}
		spy := &spyMetrics{}
		svc := New(Options{
			Synthetic: generate.NewSyntheticGeneratorSeeded(6),
			Cache:     pool,
			Metrics:   spy,
		})

		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId: "pool2",
			Entity:    "user",
			Count:     5,
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())
		assert.Equal(t, int32(5), resp.GetRecordCount())

		// The short pool is left alone for a later top-up.
		assert.Zero(t, pool.gets)
		assert.Equal(t, 1, spy.misses)
		assert.Zero(t, spy.hits)
	})

	t.Run("scenario requests bypass the pool", func(t *testing.T) {
		pool := &fakePool{records: poolUsers()}
		spy := &spyMetrics{}
		svc := New(Options{
			Synthetic: generate.NewSyntheticGeneratorSeeded(6),
			Cache:     pool,
			Metrics:   spy,
		})

		resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
			RequestId: "pool3",
			Entity:    "user",
			Count:     2,
			Scenarios: []*pb.Scenario{{Name: "vip", Count: 2}},
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())

		assert.Zero(t, pool.gets)
		assert.Zero(t, spy.hits+spy.misses)
	})
}

func TestGenerateData_CoherenceScoring(t *testing.T) {
	svc := New(Options{Synthetic: generate.NewSyntheticGeneratorSeeded(11)})

	resp, err := svc.GenerateData(context.Background(), &pb.GenerateRequest{
		RequestId:        "cart",
		Entity:           "cart",
		Count:            3,
		GenerationMethod: pb.GenerationMethod_SYNTHETIC,
	})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())

	// Carts get the weighted scorer; the exact value depends on the
	// random data but stays within the score range.
	score := resp.GetMetadata().GetCoherenceScore()
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestGenerateDataStream(t *testing.T) {
	t.Run("chunked delivery with terminal marker", func(t *testing.T) {
		svc := New(Options{
			Config:    &config.Settings{DefaultBatchSize: 2},
			Synthetic: generate.NewSyntheticGeneratorSeeded(42),
		})
		stream := newCaptureStream()

		err := svc.GenerateDataStream(&pb.GenerateRequest{
			RequestId: "st1",
			Entity:    "user",
			Count:     5,
		}, stream)
		require.NoError(t, err)

		// 5 records at batch size 2: three data chunks plus the final
		// empty marker.
		require.Len(t, stream.chunks, 4)

		total := 0
		for i, chunk := range stream.chunks {
			assert.Equal(t, "st1", chunk.GetRequestId())
			assert.Equal(t, int32(i), chunk.GetChunkIndex())

			if i < 3 {
				assert.False(t, chunk.GetIsFinal())
				total += len(decodeRecords(t, chunk.GetData()))
			}
		}
		assert.Equal(t, 5, total)

		last := stream.chunks[len(stream.chunks)-1]
		assert.True(t, last.GetIsFinal())
		assert.Empty(t, last.GetData())
	})

	t.Run("record indexes are continuous across chunks", func(t *testing.T) {
		svc := New(Options{
			Config:    &config.Settings{DefaultBatchSize: 3},
			Synthetic: generate.NewSyntheticGeneratorSeeded(8),
		})
		stream := newCaptureStream()

		require.NoError(t, svc.GenerateDataStream(&pb.GenerateRequest{
			RequestId: "st2",
			Entity:    "user",
			Count:     7,
		}, stream))

		var indexes []float64
		for _, chunk := range stream.chunks {
			if chunk.GetData() == "" {
				continue
			}
			for _, rec := range decodeRecords(t, chunk.GetData()) {
				indexes = append(indexes, rec["_index"].(float64))
			}
		}
		require.Len(t, indexes, 7)
		for i, idx := range indexes {
			assert.Equal(t, float64(i), idx)
		}
	})

	t.Run("invalid count yields a single error chunk", func(t *testing.T) {
		svc := New(Options{})
		stream := newCaptureStream()

		err := svc.GenerateDataStream(&pb.GenerateRequest{RequestId: "st3", Entity: "user"}, stream)
		require.NoError(t, err)
		require.Len(t, stream.chunks, 1)

		chunk := stream.chunks[0]
		assert.True(t, chunk.GetIsFinal())

		var payload map[string]string
		require.NoError(t, json.Unmarshal([]byte(chunk.GetData()), &payload))
		assert.Equal(t, "count must be positive", payload["error"])
	})

	t.Run("generation failure yields an error chunk", func(t *testing.T) {
		svc := New(Options{})
		stream := newCaptureStream()

		err := svc.GenerateDataStream(&pb.GenerateRequest{
			RequestId:        "st4",
			Entity:           "user",
			Count:            5,
			GenerationMethod: pb.GenerationMethod_LLM,
		}, stream)
		require.NoError(t, err)
		require.Len(t, stream.chunks, 1)

		var payload map[string]string
		require.NoError(t, json.Unmarshal([]byte(stream.chunks[0].GetData()), &payload))
		assert.Equal(t, "no LLM provider configured", payload["error"])
	})

	t.Run("streaming ignores the sync limit", func(t *testing.T) {
		svc := New(Options{
			Config:    &config.Settings{MaxSyncRecords: 10, DefaultBatchSize: 50},
			Synthetic: generate.NewSyntheticGeneratorSeeded(4),
		})
		stream := newCaptureStream()

		require.NoError(t, svc.GenerateDataStream(&pb.GenerateRequest{
			RequestId: "st5",
			Entity:    "user",
			Count:     120,
		}, stream))

		total := 0
		for _, chunk := range stream.chunks {
			if chunk.GetData() != "" {
				total += len(decodeRecords(t, chunk.GetData()))
			}
		}
		assert.Equal(t, 120, total)
	})
}

func TestGetSchemas(t *testing.T) {
	svc := New(Options{})

	t.Run("all builtins listed", func(t *testing.T) {
		resp, err := svc.GetSchemas(context.Background(), &pb.GetSchemasRequest{})
		require.NoError(t, err)

		names := make([]string, 0, len(resp.GetSchemas()))
		for _, sc := range resp.GetSchemas() {
			names = append(names, sc.GetName())
		}
		assert.Equal(t, []string{"cart", "order", "payment", "product", "review", "user"}, names)
	})

	t.Run("field details carried through", func(t *testing.T) {
		resp, err := svc.GetSchemas(context.Background(), &pb.GetSchemasRequest{Domain: "ecommerce"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.GetSchemas())

		var user *pb.SchemaInfo
		for _, sc := range resp.GetSchemas() {
			if sc.GetName() == "user" {
				user = sc
			}
		}
		require.NotNil(t, user)
		assert.Equal(t, "ecommerce", user.GetDomain())

		var userID *pb.SchemaFieldInfo
		for _, f := range user.GetFields() {
			if f.GetName() == "user_id" {
				userID = f
			}
		}
		require.NotNil(t, userID)
		assert.True(t, userID.GetRequired())
		assert.Equal(t, "string", userID.GetType())
		assert.Equal(t, "USR-{random:7}", userID.GetExample())
	})

	t.Run("unknown domain is empty", func(t *testing.T) {
		resp, err := svc.GetSchemas(context.Background(), &pb.GetSchemasRequest{Domain: "aviation"})
		require.NoError(t, err)
		assert.Empty(t, resp.GetSchemas())
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("minimal service is healthy", func(t *testing.T) {
		svc := New(Options{})

		resp, err := svc.HealthCheck(context.Background(), &pb.HealthCheckRequest{})
		require.NoError(t, err)

		assert.Equal(t, "healthy", resp.GetStatus())
		assert.Equal(t, map[string]string{
			"synthetic":    "ok",
			"llm":          "disabled",
			"vector_store": "disabled",
			"cache":        "disabled",
		}, resp.GetComponents())
	})

	t.Run("unreachable store degrades", func(t *testing.T) {
		store := &stubStore{connectErr: fmt.Errorf("down")}
		svc := New(Options{Store: store})

		resp, err := svc.HealthCheck(context.Background(), &pb.HealthCheckRequest{})
		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.GetStatus())
		assert.Equal(t, "unreachable", resp.GetComponents()["vector_store"])
	})

	t.Run("enabled cache reports ok", func(t *testing.T) {
		svc := New(Options{Cache: &fakePool{}})

		resp, err := svc.HealthCheck(context.Background(), &pb.HealthCheckRequest{})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.GetComponents()["cache"])
	})

	t.Run("reachable store and llm report ok", func(t *testing.T) {
		store := &stubStore{}
		llm := generate.NewLLMGenerator(&stubProvider{reply: "[]"}, nil)
		svc := New(Options{Store: store, LLM: llm})

		resp, err := svc.HealthCheck(context.Background(), &pb.HealthCheckRequest{})
		require.NoError(t, err)
		assert.Equal(t, "healthy", resp.GetStatus())
		assert.Equal(t, "ok", resp.GetComponents()["vector_store"])
		assert.Equal(t, "configured", resp.GetComponents()["llm"])
	})
}
