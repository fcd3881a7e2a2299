package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/qaforge/datagen/pkg/cache"
	"github.com/qaforge/datagen/pkg/config"
	"github.com/qaforge/datagen/pkg/databases"
	"github.com/qaforge/datagen/pkg/generate"
	"github.com/qaforge/datagen/pkg/llms"
	"github.com/qaforge/datagen/pkg/observability"
	"github.com/qaforge/datagen/pkg/schema"
	"github.com/qaforge/datagen/pkg/server"
	"github.com/qaforge/datagen/pkg/service"
	"github.com/qaforge/datagen/pkg/transport"
)

// ServeCmd starts the gRPC and HTTP servers.
type ServeCmd struct {
	GRPCPort int `name:"grpc-port" help:"gRPC port (overrides GRPC_PORT)."`
	HTTPPort int `name:"http-port" help:"HTTP port (overrides HTTP_PORT)."`
}

func (c *ServeCmd) Run(cli *CLI) error {
	cfg := config.Load()
	if c.GRPCPort != 0 {
		cfg.GRPCPort = c.GRPCPort
	}
	if c.HTTPPort != 0 {
		cfg.HTTPPort = c.HTTPPort
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := schema.NewRegistry()
	if cfg.SchemaDir != "" {
		n, err := registry.LoadDir(cfg.SchemaDir)
		if err != nil {
			slog.Warn("schema directory load failed", "dir", cfg.SchemaDir, "error", err)
		} else {
			slog.Info("loaded schemas from directory", "dir", cfg.SchemaDir, "count", n)
		}
	}

	metrics, err := observability.InitMetrics(ctx, observability.MetricsConfig{
		Enabled: cfg.PrometheusEnabled,
	})
	if err != nil {
		return fmt.Errorf("metrics init failed: %w", err)
	}
	observability.SetGlobalMetrics(metrics)

	if _, err := observability.InitGlobalTracer(ctx, observability.TracerConfig{
		Enabled:      cfg.TracingEnabled,
		EndpointURL:  cfg.OTLPEndpoint,
		SamplingRate: 1.0,
		ServiceName:  cfg.ServiceName,
	}); err != nil {
		slog.Warn("tracer init failed, tracing disabled", "error", err)
	}

	store := buildStore(cfg)
	llmGen := buildLLMGenerator(cfg)

	var retrievalGen *generate.RetrievalGenerator
	var hybridGen *generate.HybridGenerator
	if store != nil {
		retrievalGen = generate.NewRetrievalGenerator(store, cfg.RAGTopK)
		if llmGen != nil {
			hybridGen = generate.NewHybridGenerator(retrievalGen, llmGen)
		}
	}

	cacheClient, err := cache.New(cfg.RedisURL, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	if err != nil {
		slog.Warn("invalid redis URL, cache disabled", "error", err)
	} else {
		// Best effort; a down Redis leaves the cache disabled.
		_ = cacheClient.Connect(ctx)
	}

	svc := service.New(service.Options{
		Config:    cfg,
		Registry:  registry,
		LLM:       llmGen,
		Retrieval: retrievalGen,
		Hybrid:    hybridGen,
		Store:     store,
		Cache:     cacheClient,
		Metrics:   metrics,
	})

	grpcServer := transport.NewServer(svc, transport.Config{
		Address: fmt.Sprintf(":%d", cfg.GRPCPort),
	})

	var grpcReady atomic.Bool
	httpServer := server.NewHTTPServer(cfg, svc, grpcReady.Load)

	errCh := make(chan error, 2)
	go func() {
		errCh <- grpcServer.Start()
	}()
	go func() {
		<-grpcServer.Ready()
		grpcReady.Store(true)
	}()
	go func() {
		errCh <- httpServer.Start()
	}()

	slog.Info("service started",
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			slog.Error("server exited", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}
	if err := grpcServer.Stop(shutdownCtx); err != nil {
		slog.Error("gRPC shutdown failed", "error", err)
	}
	if cacheClient != nil {
		_ = cacheClient.Disconnect()
	}
	return nil
}

// buildStore picks the vector backend. Weaviate is the default; qdrant is
// selected by VECTOR_BACKEND=qdrant.
func buildStore(cfg *config.Settings) databases.VectorStore {
	switch strings.ToLower(cfg.VectorBackend) {
	case "qdrant":
		host, port := splitHostPort(cfg.QdrantURL)
		return databases.NewQdrantStore(databases.QdrantConfig{
			Host: host,
			Port: port,
		})
	case "", "weaviate":
		if cfg.WeaviateURL == "" {
			return nil
		}
		return databases.NewWeaviateStore(databases.WeaviateConfig{
			URL:    cfg.WeaviateURL,
			APIKey: cfg.WeaviateAPIKey,
		})
	default:
		slog.Warn("unknown vector backend, retrieval disabled", "backend", cfg.VectorBackend)
		return nil
	}
}

// buildLLMGenerator wires the primary and secondary completion providers.
// USE_LOCAL_LLM flips vLLM into the primary slot.
func buildLLMGenerator(cfg *config.Settings) *generate.LLMGenerator {
	var anthropic, vllm llms.Provider

	if cfg.AnthropicAPIKey != "" {
		p, err := llms.NewAnthropicProvider(llms.AnthropicConfig{
			APIKey:      cfg.AnthropicAPIKey,
			Model:       cfg.ClaudeModel,
			MaxTokens:   cfg.ClaudeMaxTokens,
			Temperature: cfg.ClaudeTemperature,
		})
		if err != nil {
			slog.Warn("anthropic provider unavailable", "error", err)
		} else {
			anthropic = p
		}
	}

	if cfg.VLLMBaseURL != "" {
		p, err := llms.NewOpenAIProvider(llms.OpenAIConfig{
			BaseURL:     cfg.VLLMBaseURL,
			Model:       cfg.VLLMModel,
			MaxTokens:   cfg.ClaudeMaxTokens,
			Temperature: cfg.ClaudeTemperature,
		})
		if err != nil {
			slog.Warn("vLLM provider unavailable", "error", err)
		} else {
			vllm = p
		}
	}

	primary, secondary := anthropic, vllm
	if cfg.UseLocalLLM && vllm != nil {
		primary, secondary = vllm, anthropic
	}
	if primary == nil {
		primary, secondary = secondary, nil
	}
	if primary == nil {
		slog.Warn("no LLM provider configured, LLM path disabled")
		return nil
	}

	slog.Info("LLM providers configured", "primary", primary.Name(), "secondary", providerName(secondary))
	return generate.NewLLMGenerator(primary, secondary)
}

func providerName(p llms.Provider) string {
	if p == nil {
		return "none"
	}
	return p.Name()
}

func splitHostPort(addr string) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, 0
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return host, 0
	}
	return host, port
}
