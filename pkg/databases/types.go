// Package databases provides the vector store backends used for
// retrieval-based generation. Weaviate over its REST API is the default;
// Qdrant over gRPC is the alternative, selected with VECTOR_BACKEND.
package databases

import "context"

// Pattern collections. Retrieval picks one per request: defect-triggering
// requests search past defect patterns, production-like requests search
// anonymized production samples, everything else searches curated test
// data patterns.
const (
	CollectionPatterns = "TestDataPattern"
	CollectionDefects  = "DefectPattern"
	CollectionProd     = "ProductionSample"
)

// SearchResult is one retrieved pattern with its relevance score.
type SearchResult struct {
	ID    string
	Data  map[string]any
	Score float64
}

// VectorStore is the contract both backends implement. Connect must be
// called before any query; Disconnect releases the underlying transport.
type VectorStore interface {
	Connect(ctx context.Context) error
	Disconnect() error
	Search(ctx context.Context, collection, query string, topK int) ([]SearchResult, error)
	Insert(ctx context.Context, collection, id string, data map[string]any) error
	BatchInsert(ctx context.Context, collection string, items map[string]map[string]any) error
	Count(ctx context.Context, collection string) (int, error)
	Exists(ctx context.Context, collection string) (bool, error)
	DeleteCollection(ctx context.Context, collection string) error
}
