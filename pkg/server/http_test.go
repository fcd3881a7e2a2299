package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/datagen/pkg/config"
	"github.com/qaforge/datagen/pkg/generate"
	"github.com/qaforge/datagen/pkg/pb"
	"github.com/qaforge/datagen/pkg/service"
)

func testServer(ready func() bool) *HTTPServer {
	cfg := &config.Settings{
		ServiceName: "datagen",
		Environment: "test",
		GRPCPort:    9091,
		HTTPPort:    8091,
	}
	svc := service.New(service.Options{
		Config:    cfg,
		Synthetic: generate.NewSyntheticGeneratorSeeded(42),
	})
	return NewHTTPServer(cfg, svc, ready)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoints(t *testing.T) {
	s := testServer(nil)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		body := decodeBody(t, rec)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "datagen", body["service"])
		assert.Equal(t, "test", body["environment"])
	})

	t.Run("liveness", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleLive(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", decodeBody(t, rec)["status"])
	})

	t.Run("readiness follows the probe", func(t *testing.T) {
		up := testServer(func() bool { return true })
		rec := httptest.NewRecorder()
		up.handleReady(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(9091), decodeBody(t, rec)["grpc_port"])

		down := testServer(func() bool { return false })
		rec = httptest.NewRecorder()
		down.handleReady(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandleGenerate(t *testing.T) {
	s := testServer(nil)

	post := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
		s.handleGenerate(rec, req)
		return rec
	}

	t.Run("happy path", func(t *testing.T) {
		rec := post(t, `{
			"request_id": "http-1",
			"domain": "ecommerce",
			"entity": "user",
			"count": 2,
			"generation_method": "synthetic"
		}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "http-1", body["requestId"])
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(2), body["recordCount"])
		assert.NotContains(t, body, "error")

		// data is embedded JSON, not a doubly encoded string.
		records, ok := body["data"].([]any)
		require.True(t, ok)
		assert.Len(t, records, 2)

		md, ok := body["metadata"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "synthetic", md["generationPath"])
		assert.Equal(t, map[string]any{"default": float64(2)}, md["scenarioCounts"])
	})

	t.Run("scenarios and constraints decode", func(t *testing.T) {
		rec := post(t, `{
			"entity": "user",
			"count": 3,
			"scenarios": [
				{"name": "vip", "count": 3, "overrides": {"loyalty_tier": "gold"}}
			],
			"constraints": {
				"first_name": {"min_length": 2, "max_length": 20}
			}
		}`)
		require.Equal(t, http.StatusOK, rec.Code)

		md := decodeBody(t, rec)["metadata"].(map[string]any)
		assert.Equal(t, map[string]any{"vip": float64(3)}, md["scenarioCounts"])
	})

	t.Run("business failure maps to 400", func(t *testing.T) {
		rec := post(t, `{"entity": "user", "count": 0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "count must be positive", body["error"])
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		rec := post(t, `{"entity":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], "invalid request body")
	})

	t.Run("malformed constraint maps to 400", func(t *testing.T) {
		rec := post(t, `{"entity": "user", "count": 1, "constraints": {"age": [1,2]}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], `invalid constraint for "age"`)
	})
}

func TestHandleSchemas(t *testing.T) {
	s := testServer(nil)

	t.Run("lists schemas with fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleSchemas(rec, httptest.NewRequest(http.MethodGet, "/schemas", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		schemas, ok := decodeBody(t, rec)["schemas"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, schemas)

		first := schemas[0].(map[string]any)
		assert.Contains(t, first, "name")
		assert.Contains(t, first, "domain")
		fields := first["fields"].([]any)
		assert.NotEmpty(t, fields)
	})

	t.Run("domain filter", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleSchemas(rec, httptest.NewRequest(http.MethodGet, "/schemas?domain=aviation", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		schemas := decodeBody(t, rec)["schemas"].([]any)
		assert.Empty(t, schemas)
	})
}

func TestMethodFromString(t *testing.T) {
	assert.Equal(t, pb.GenerationMethod_SYNTHETIC, methodFromString("synthetic"))
	assert.Equal(t, pb.GenerationMethod_SYNTHETIC, methodFromString("SYNTHETIC"))
	assert.Equal(t, pb.GenerationMethod_LLM, methodFromString("llm"))
	assert.Equal(t, pb.GenerationMethod_RETRIEVAL, methodFromString("Retrieval"))
	assert.Equal(t, pb.GenerationMethod_HYBRID, methodFromString("hybrid"))
	assert.Equal(t, pb.GenerationMethod_AUTO, methodFromString(""))
	assert.Equal(t, pb.GenerationMethod_AUTO, methodFromString("bogus"))
}

func TestMetricsRouteToggle(t *testing.T) {
	with := NewHTTPServer(&config.Settings{PrometheusEnabled: true}, service.New(service.Options{}), nil)
	without := NewHTTPServer(&config.Settings{}, service.New(service.Options{}), nil)

	assert.True(t, with.metrics)
	assert.False(t, without.metrics)
}
