package databases

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/qdrant/go-client/qdrant"
)

// scrollWindow bounds how many points a keyword search scans.
const scrollWindow = 256

type QdrantConfig struct {
	Host   string
	Port   int
	APIKey string
	UseTLS bool
}

// QdrantStore implements VectorStore over the Qdrant gRPC API. Patterns
// are stored without embeddings, so Search scrolls a window of points and
// ranks them by query term overlap against the serialized payload.
type QdrantStore struct {
	config QdrantConfig
	client *qdrant.Client
}

func NewQdrantStore(cfg QdrantConfig) *QdrantStore {
	if cfg.Port == 0 {
		cfg.Port = 6334
	}
	return &QdrantStore{config: cfg}
}

func (q *QdrantStore) Connect(ctx context.Context) error {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   q.config.Host,
		Port:   q.config.Port,
		APIKey: q.config.APIKey,
		UseTLS: q.config.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create qdrant client: %w", err)
	}

	if _, err := client.HealthCheck(ctx); err != nil {
		client.Close()
		return fmt.Errorf("qdrant not reachable at %s:%d: %w", q.config.Host, q.config.Port, err)
	}

	q.client = client
	return nil
}

func (q *QdrantStore) Disconnect() error {
	if q.client == nil {
		return nil
	}
	err := q.client.Close()
	q.client = nil
	return err
}

func (q *QdrantStore) Search(ctx context.Context, collection, query string, topK int) ([]SearchResult, error) {
	if q.client == nil {
		return nil, fmt.Errorf("not connected")
	}

	points, err := q.client.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: collection,
		Limit:          qdrant.PtrOf(uint32(scrollWindow)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scroll collection %s: %w", collection, err)
	}

	terms := queryTerms(query)
	results := make([]SearchResult, 0, len(points))
	for _, point := range points {
		data := payloadToMap(point.Payload)
		results = append(results, SearchResult{
			ID:    pointID(point.Id),
			Data:  data,
			Score: overlapScore(terms, data),
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func (q *QdrantStore) Insert(ctx context.Context, collection, id string, data map[string]any) error {
	return q.BatchInsert(ctx, collection, map[string]map[string]any{id: data})
}

func (q *QdrantStore) BatchInsert(ctx context.Context, collection string, items map[string]map[string]any) error {
	if q.client == nil {
		return fmt.Errorf("not connected")
	}

	if err := q.ensureCollection(ctx, collection); err != nil {
		return err
	}

	points := make([]*qdrant.PointStruct, 0, len(items))
	for id, data := range items {
		payload := make(map[string]*qdrant.Value, len(data))
		for key, value := range data {
			val, err := qdrant.NewValue(value)
			if err != nil {
				return fmt.Errorf("failed to convert payload value for key %s: %w", key, err)
			}
			payload[key] = val
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(id),
			Vectors: qdrant.NewVectors(0),
			Payload: payload,
		})
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

func (q *QdrantStore) Count(ctx context.Context, collection string) (int, error) {
	if q.client == nil {
		return 0, fmt.Errorf("not connected")
	}

	count, err := q.client.Count(ctx, &qdrant.CountPoints{CollectionName: collection})
	if err != nil {
		return 0, fmt.Errorf("failed to count collection %s: %w", collection, err)
	}
	return int(count), nil
}

func (q *QdrantStore) Exists(ctx context.Context, collection string) (bool, error) {
	if q.client == nil {
		return false, fmt.Errorf("not connected")
	}
	return q.client.CollectionExists(ctx, collection)
}

func (q *QdrantStore) DeleteCollection(ctx context.Context, collection string) error {
	if q.client == nil {
		return fmt.Errorf("not connected")
	}
	if err := q.client.DeleteCollection(ctx, collection); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", collection, err)
	}
	return nil
}

func (q *QdrantStore) ensureCollection(ctx context.Context, collection string) error {
	exists, err := q.client.CollectionExists(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     1,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

func pointID(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Uuid:
		return v.Uuid
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num)
	}
	return ""
}

func payloadToMap(payload map[string]*qdrant.Value) map[string]any {
	out := make(map[string]any, len(payload))
	for key, value := range payload {
		out[key] = valueToAny(value)
	}
	return out
}

func valueToAny(value *qdrant.Value) any {
	if value == nil {
		return nil
	}
	switch v := value.Kind.(type) {
	case *qdrant.Value_StringValue:
		return v.StringValue
	case *qdrant.Value_IntegerValue:
		return v.IntegerValue
	case *qdrant.Value_DoubleValue:
		return v.DoubleValue
	case *qdrant.Value_BoolValue:
		return v.BoolValue
	case *qdrant.Value_ListValue:
		if v.ListValue == nil {
			return nil
		}
		list := make([]any, len(v.ListValue.Values))
		for i, item := range v.ListValue.Values {
			list[i] = valueToAny(item)
		}
		return list
	case *qdrant.Value_StructValue:
		if v.StructValue == nil {
			return nil
		}
		return payloadToMap(v.StructValue.Fields)
	}
	return nil
}

func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ":,.")
		if len(f) > 2 {
			terms = append(terms, f)
		}
	}
	return terms
}

// overlapScore is the fraction of query terms found in the payload's
// serialized text form.
func overlapScore(terms []string, data map[string]any) float64 {
	if len(terms) == 0 {
		return 0
	}
	text := strings.ToLower(fmt.Sprintf("%v", data))
	hits := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			hits++
		}
	}
	return float64(hits) / float64(len(terms))
}
