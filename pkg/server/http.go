// Package server exposes the HTTP surface: health probes, Prometheus
// metrics, and JSON mirrors of the generation and schema RPCs for UI and
// operations use.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/qaforge/datagen/pkg/config"
	"github.com/qaforge/datagen/pkg/pb"
	"github.com/qaforge/datagen/pkg/service"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

type HTTPServer struct {
	cfg     *config.Settings
	svc     *service.Service
	server  *http.Server
	ready   func() bool
	metrics bool
}

func NewHTTPServer(cfg *config.Settings, svc *service.Service, ready func() bool) *HTTPServer {
	return &HTTPServer{
		cfg:     cfg,
		svc:     svc,
		ready:   ready,
		metrics: cfg.PrometheusEnabled,
	}
}

func (s *HTTPServer) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/health/live", s.handleLive)
	r.Get("/health/ready", s.handleReady)
	if s.metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	r.Post("/generate", s.handleGenerate)
	r.Get("/schemas", s.handleSchemas)

	addr := fmt.Sprintf(":%d", s.cfg.HTTPPort)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("HTTP server starting", "address", addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	slog.Info("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"service":     s.cfg.ServiceName,
		"version":     Version,
		"environment": s.cfg.Environment,
	})
}

func (s *HTTPServer) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil && !s.ready() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ready",
		"grpc_port": s.cfg.GRPCPort,
	})
}

// generateRequest is the JSON mirror of the GenerateRequest message.
type generateRequest struct {
	RequestID        string                     `json:"request_id"`
	Domain           string                     `json:"domain"`
	Entity           string                     `json:"entity"`
	Count            int32                      `json:"count"`
	Context          string                     `json:"context"`
	Hints            []string                   `json:"hints"`
	Scenarios        []generateScenario         `json:"scenarios"`
	Constraints      map[string]json.RawMessage `json:"constraints"`
	PredefinedSchema string                     `json:"predefined_schema"`
	InlineSchema     string                     `json:"inline_schema"`
	LearnFromHistory bool                       `json:"learn_from_history"`
	DefectTriggering bool                       `json:"defect_triggering"`
	ProductionLike   bool                       `json:"production_like"`
	GenerationMethod string                     `json:"generation_method"`
}

type generateScenario struct {
	Name        string            `json:"name"`
	Count       int32             `json:"count"`
	Description string            `json:"description"`
	Overrides   map[string]string `json:"overrides"`
}

type fieldConstraint struct {
	Min        *float64 `json:"min"`
	Max        *float64 `json:"max"`
	MinLength  *int32   `json:"min_length"`
	MaxLength  *int32   `json:"max_length"`
	EnumValues []string `json:"enum_values"`
	Regex      string   `json:"regex"`
	Format     string   `json:"format"`
}

func (s *HTTPServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var in generateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	req := &pb.GenerateRequest{
		RequestId:        in.RequestID,
		Domain:           in.Domain,
		Entity:           in.Entity,
		Count:            in.Count,
		Context:          in.Context,
		Hints:            in.Hints,
		InlineSchema:     in.InlineSchema,
		LearnFromHistory: in.LearnFromHistory,
		DefectTriggering: in.DefectTriggering,
		ProductionLike:   in.ProductionLike,
		GenerationMethod: methodFromString(in.GenerationMethod),
	}
	if in.PredefinedSchema != "" {
		req.Schema = &pb.SchemaRef{PredefinedSchema: in.PredefinedSchema}
	}
	for _, sc := range in.Scenarios {
		req.Scenarios = append(req.Scenarios, &pb.Scenario{
			Name:        sc.Name,
			Count:       sc.Count,
			Description: sc.Description,
			Overrides:   sc.Overrides,
		})
	}
	if len(in.Constraints) > 0 {
		req.Constraints = &pb.Constraints{FieldConstraints: map[string]*pb.FieldConstraint{}}
		for name, raw := range in.Constraints {
			var fc fieldConstraint
			if err := json.Unmarshal(raw, &fc); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid constraint for %q: %v", name, err)})
				return
			}
			req.Constraints.FieldConstraints[name] = &pb.FieldConstraint{
				Min:        fc.Min,
				Max:        fc.Max,
				MinLength:  fc.MinLength,
				MaxLength:  fc.MaxLength,
				EnumValues: fc.EnumValues,
				Regex:      optString(fc.Regex),
				Format:     optString(fc.Format),
			}
		}
	}

	resp, err := s.svc.GenerateData(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	out := map[string]any{
		"requestId":   resp.GetRequestId(),
		"success":     resp.GetSuccess(),
		"recordCount": resp.GetRecordCount(),
	}
	if resp.GetError() != "" {
		out["error"] = resp.GetError()
	}
	if resp.GetData() != "" {
		out["data"] = json.RawMessage(resp.GetData())
	}
	if md := resp.GetMetadata(); md != nil {
		out["metadata"] = map[string]any{
			"generationPath":   md.GetGenerationPath(),
			"llmTokensUsed":    md.GetLlmTokensUsed(),
			"generationTimeMs": md.GetGenerationTimeMs(),
			"coherenceScore":   md.GetCoherenceScore(),
			"scenarioCounts":   md.GetScenarioCounts(),
		}
	}

	status := http.StatusOK
	if !resp.GetSuccess() {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, out)
}

func (s *HTTPServer) handleSchemas(w http.ResponseWriter, r *http.Request) {
	resp, err := s.svc.GetSchemas(r.Context(), &pb.GetSchemasRequest{
		Domain: r.URL.Query().Get("domain"),
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	schemas := make([]map[string]any, 0, len(resp.GetSchemas()))
	for _, sc := range resp.GetSchemas() {
		fields := make([]map[string]any, 0, len(sc.GetFields()))
		for _, f := range sc.GetFields() {
			fields = append(fields, map[string]any{
				"name":        f.GetName(),
				"type":        f.GetType(),
				"required":    f.GetRequired(),
				"description": f.GetDescription(),
				"example":     f.GetExample(),
			})
		}
		schemas = append(schemas, map[string]any{
			"name":        sc.GetName(),
			"domain":      sc.GetDomain(),
			"description": sc.GetDescription(),
			"fields":      fields,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"schemas": schemas})
}

func methodFromString(method string) pb.GenerationMethod {
	if v, ok := pb.GenerationMethod_value[strings.ToUpper(method)]; ok {
		return pb.GenerationMethod(v)
	}
	return pb.GenerationMethod_AUTO
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
