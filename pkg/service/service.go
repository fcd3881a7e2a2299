// Package service implements the TestDataService RPC surface. It owns the
// orchestration contract: routing, schema resolution, generator dispatch
// with fallbacks, coherence scoring, and the streaming chunk protocol.
package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/semaphore"

	"github.com/qaforge/datagen/pkg/config"
	"github.com/qaforge/datagen/pkg/coherence"
	"github.com/qaforge/datagen/pkg/databases"
	"github.com/qaforge/datagen/pkg/generate"
	"github.com/qaforge/datagen/pkg/observability"
	"github.com/qaforge/datagen/pkg/pb"
	"github.com/qaforge/datagen/pkg/schema"
)

// maxConcurrentGenerations bounds in-flight backend calls so a burst of
// RPCs cannot exhaust LLM or store connections.
const maxConcurrentGenerations = 8

// RecordPool is the pre-generated record pool backing the synthetic fast
// path. The Redis cache client satisfies it.
type RecordPool interface {
	Enabled() bool
	PoolSize(ctx context.Context, pool string) int
	GetFromPool(ctx context.Context, pool string, count int) []map[string]any
}

type Service struct {
	pb.UnimplementedTestDataServiceServer

	cfg      *config.Settings
	registry *schema.Registry
	router   *generate.Router
	scorer   *coherence.Scorer

	synthetic *generate.SyntheticGenerator
	llm       *generate.LLMGenerator
	retrieval *generate.RetrievalGenerator
	hybrid    *generate.HybridGenerator

	store   databases.VectorStore
	cache   RecordPool
	metrics observability.Metrics
	sem     *semaphore.Weighted
}

// Options carries the service dependencies. Nil optional dependencies
// (llm, store, cache, metrics) disable the corresponding path or concern.
type Options struct {
	Config    *config.Settings
	Registry  *schema.Registry
	Synthetic *generate.SyntheticGenerator
	LLM       *generate.LLMGenerator
	Retrieval *generate.RetrievalGenerator
	Hybrid    *generate.HybridGenerator
	Store     databases.VectorStore
	Cache     RecordPool
	Metrics   observability.Metrics
}

func New(opts Options) *Service {
	if opts.Registry == nil {
		opts.Registry = schema.NewRegistry()
	}
	if opts.Synthetic == nil {
		opts.Synthetic = generate.NewSyntheticGenerator()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NoopMetrics{}
	}
	return &Service{
		cfg:       opts.Config,
		registry:  opts.Registry,
		router:    generate.NewRouter(),
		scorer:    coherence.NewScorer(),
		synthetic: opts.Synthetic,
		llm:       opts.LLM,
		retrieval: opts.Retrieval,
		hybrid:    opts.Hybrid,
		store:     opts.Store,
		cache:     opts.Cache,
		metrics:   opts.Metrics,
		sem:       semaphore.NewWeighted(maxConcurrentGenerations),
	}
}

// Registry exposes the schema registry for the HTTP layer and the seeding
// command.
func (s *Service) Registry() *schema.Registry {
	return s.registry
}

func (s *Service) GetSchemas(ctx context.Context, req *pb.GetSchemasRequest) (*pb.GetSchemasResponse, error) {
	schemas := s.registry.List(req.GetDomain())

	resp := &pb.GetSchemasResponse{
		Schemas: make([]*pb.SchemaInfo, 0, len(schemas)),
	}
	for _, sc := range schemas {
		info := schema.Describe(sc)
		fields := make([]*pb.SchemaFieldInfo, 0, len(info.Fields))
		for _, f := range info.Fields {
			fields = append(fields, &pb.SchemaFieldInfo{
				Name:        f.Name,
				Type:        f.Type,
				Required:    f.Required,
				Description: f.Description,
				Example:     f.Example,
			})
		}
		resp.Schemas = append(resp.Schemas, &pb.SchemaInfo{
			Name:        info.Name,
			Domain:      info.Domain,
			Description: info.Description,
			Fields:      fields,
		})
	}
	return resp, nil
}

func (s *Service) HealthCheck(ctx context.Context, _ *pb.HealthCheckRequest) (*pb.HealthCheckResponse, error) {
	components := map[string]string{
		"synthetic": "ok",
	}

	if s.llm != nil {
		components["llm"] = "configured"
	} else {
		components["llm"] = "disabled"
	}

	if s.store != nil {
		if err := s.store.Connect(ctx); err != nil {
			components["vector_store"] = "unreachable"
		} else {
			components["vector_store"] = "ok"
			s.store.Disconnect()
		}
	} else {
		components["vector_store"] = "disabled"
	}

	if s.cache != nil && s.cache.Enabled() {
		components["cache"] = "ok"
	} else {
		components["cache"] = "disabled"
	}

	status := "healthy"
	if components["vector_store"] == "unreachable" {
		status = "degraded"
	}

	slog.Debug("health check", "status", status)
	return &pb.HealthCheckResponse{
		Status:     status,
		Components: components,
	}, nil
}
