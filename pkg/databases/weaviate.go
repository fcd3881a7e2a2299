package databases

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/qaforge/datagen/pkg/httpclient"
)

// payloadProperty maps each collection to the text property holding the
// serialized record.
var payloadProperty = map[string]string{
	CollectionPatterns: "data",
	CollectionDefects:  "trigger_data",
	CollectionProd:     "anonymized_data",
}

type WeaviateConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// WeaviateStore talks to Weaviate over its REST and GraphQL endpoints.
// Keyword (BM25) search is used for pattern lookup since patterns are
// indexed from their serialized record text.
type WeaviateStore struct {
	config     WeaviateConfig
	httpClient *httpclient.Client
	connected  bool
}

func NewWeaviateStore(cfg WeaviateConfig) *WeaviateStore {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &WeaviateStore{
		config: cfg,
		httpClient: httpclient.New(
			httpclient.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			httpclient.WithMaxRetries(2),
		),
	}
}

// Connect verifies the instance is ready.
func (w *WeaviateStore) Connect(ctx context.Context) error {
	resp, err := w.do(ctx, http.MethodGet, "/v1/.well-known/ready", nil)
	if err = closeOnErr(resp, err); err != nil {
		return fmt.Errorf("weaviate not reachable at %s: %w", w.config.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weaviate not ready: HTTP %d", resp.StatusCode)
	}
	w.connected = true
	slog.Debug("connected to weaviate", "url", w.config.URL)
	return nil
}

func (w *WeaviateStore) Disconnect() error {
	w.connected = false
	return nil
}

// Search runs a BM25 keyword query against the collection's payload
// property and returns scored results.
func (w *WeaviateStore) Search(ctx context.Context, collection, query string, topK int) ([]SearchResult, error) {
	prop := payloadProperty[collection]
	if prop == "" {
		prop = "data"
	}

	queryJSON, _ := json.Marshal(query)
	gql := fmt.Sprintf(
		`{ Get { %s(bm25: {query: %s}, limit: %d) { %s _additional { id score } } } }`,
		collection, queryJSON, topK, prop,
	)

	body, err := json.Marshal(map[string]string{"query": gql})
	if err != nil {
		return nil, err
	}

	resp, err := w.do(ctx, http.MethodPost, "/v1/graphql", body)
	if err = closeOnErr(resp, err); err != nil {
		return nil, fmt.Errorf("weaviate search failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Data   map[string]map[string][]map[string]any `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode weaviate response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("weaviate query error: %s", parsed.Errors[0].Message)
	}

	objects := parsed.Data["Get"][collection]
	results := make([]SearchResult, 0, len(objects))
	for _, obj := range objects {
		result := SearchResult{Data: make(map[string]any)}

		if add, ok := obj["_additional"].(map[string]any); ok {
			result.ID, _ = add["id"].(string)
			// Weaviate serializes scores as strings
			switch s := add["score"].(type) {
			case string:
				result.Score, _ = strconv.ParseFloat(s, 64)
			case float64:
				result.Score = s
			}
		}
		for k, v := range obj {
			if k != "_additional" {
				result.Data[k] = v
			}
		}
		results = append(results, result)
	}
	return results, nil
}

func (w *WeaviateStore) Insert(ctx context.Context, collection, id string, data map[string]any) error {
	body, err := json.Marshal(map[string]any{
		"class":      collection,
		"id":         id,
		"properties": data,
	})
	if err != nil {
		return err
	}

	resp, err := w.do(ctx, http.MethodPost, "/v1/objects", body)
	if err = closeOnErr(resp, err); err != nil {
		return fmt.Errorf("weaviate insert failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("weaviate insert failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

func (w *WeaviateStore) BatchInsert(ctx context.Context, collection string, items map[string]map[string]any) error {
	objects := make([]map[string]any, 0, len(items))
	for id, data := range items {
		objects = append(objects, map[string]any{
			"class":      collection,
			"id":         id,
			"properties": data,
		})
	}

	body, err := json.Marshal(map[string]any{"objects": objects})
	if err != nil {
		return err
	}

	resp, err := w.do(ctx, http.MethodPost, "/v1/batch/objects", body)
	if err = closeOnErr(resp, err); err != nil {
		return fmt.Errorf("weaviate batch insert failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("weaviate batch insert failed: HTTP %d", resp.StatusCode)
	}
	return nil
}

func (w *WeaviateStore) Count(ctx context.Context, collection string) (int, error) {
	gql := fmt.Sprintf(`{ Aggregate { %s { meta { count } } } }`, collection)
	body, _ := json.Marshal(map[string]string{"query": gql})

	resp, err := w.do(ctx, http.MethodPost, "/v1/graphql", body)
	if err = closeOnErr(resp, err); err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var parsed struct {
		Data map[string]map[string][]struct {
			Meta struct {
				Count int `json:"count"`
			} `json:"meta"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, err
	}

	agg := parsed.Data["Aggregate"][collection]
	if len(agg) == 0 {
		return 0, nil
	}
	return agg[0].Meta.Count, nil
}

func (w *WeaviateStore) Exists(ctx context.Context, collection string) (bool, error) {
	resp, err := w.do(ctx, http.MethodGet, "/v1/schema/"+collection, nil)
	if resp != nil {
		defer resp.Body.Close()
		// A 404 means the class is absent, not a failure.
		return resp.StatusCode == http.StatusOK, nil
	}
	return false, err
}

func (w *WeaviateStore) DeleteCollection(ctx context.Context, collection string) error {
	resp, err := w.do(ctx, http.MethodDelete, "/v1/schema/"+collection, nil)
	if err = closeOnErr(resp, err); err != nil {
		return fmt.Errorf("weaviate delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("weaviate delete failed: HTTP %d", resp.StatusCode)
	}
	return nil
}

func (w *WeaviateStore) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSuffix(w.config.URL, "/")+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}
	if w.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+w.config.APIKey)
	}

	return w.httpClient.Do(req)
}

// closeOnErr releases the response body when the request errored. Non-2xx
// statuses surface as both a response and an error from the retry client.
func closeOnErr(resp *http.Response, err error) error {
	if err != nil && resp != nil {
		resp.Body.Close()
	}
	return err
}
